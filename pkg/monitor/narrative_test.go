package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/common"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/i18n"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
	_ "github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/testing"
)

func TestSummarizeLiveSteady(t *testing.T) {
	common.SetTestLoggerNop()
	mon := GetBareMonitor()

	now := int64(100_000_000)
	var rows []models.Reading
	for i := 0; i < 10; i++ {
		rows = append(rows, tempReadingAt(now-int64(9-i)*60_000, 21.0))
	}

	res := mon.Narrative.Summarize(NarrativeRequest{
		DeviceName: "office", Rows: rows, Mode: ViewLive, NowMs: now,
	})

	assert.Equal(t, "Live view", res.Title)
	assert.Equal(t, BadgeOK, res.Badge)
	assert.Equal(t, "Temperature is steady around 21.0°C.", res.Message)
	assert.Equal(t, i18n.LangEN, res.Lang)
}

func TestSummarizeLiveRise(t *testing.T) {
	common.SetTestLoggerNop()
	mon := GetBareMonitor()

	// steady climb of 0.5°C per minute: clear trend, low dispersion
	now := int64(100_000_000)
	var rows []models.Reading
	for i := 0; i < 10; i++ {
		rows = append(rows, tempReadingAt(now-int64(9-i)*60_000, 21.0+0.5*float64(i)))
	}

	res := mon.Narrative.Summarize(NarrativeRequest{
		DeviceName: "office", Rows: rows, Mode: ViewLive, NowMs: now,
	})

	assert.Equal(t, BadgeOK, res.Badge)
	assert.Equal(t, "Temperature rose 4.5°C over the last 10 minutes.", res.Message)
}

func TestSummarizeLiveFallFlagsLargeDrop(t *testing.T) {
	common.SetTestLoggerNop()
	mon := GetBareMonitor()

	now := int64(100_000_000)
	var rows []models.Reading
	for i := 0; i < 10; i++ {
		rows = append(rows, tempReadingAt(now-int64(9-i)*60_000, 30.0-float64(i)))
	}

	res := mon.Narrative.Summarize(NarrativeRequest{
		DeviceName: "office", Rows: rows, Mode: ViewLive, NowMs: now,
	})

	assert.Equal(t, BadgeWarn, res.Badge)
	assert.Equal(t, "Temperature fell 9.0°C over the last 10 minutes.", res.Message)
}

func TestSummarizeLiveSpike(t *testing.T) {
	common.SetTestLoggerNop()
	mon := GetBareMonitor()

	// small oscillation, then a jump far outside the recent dispersion
	now := int64(100_000_000)
	var rows []models.Reading
	for i := 0; i < 9; i++ {
		v := 21.0
		if i%2 == 1 {
			v = 21.4
		}
		rows = append(rows, tempReadingAt(now-int64(9-i)*30_000, v))
	}
	rows = append(rows, tempReadingAt(now, 23.0))

	res := mon.Narrative.Summarize(NarrativeRequest{
		DeviceName: "office", Rows: rows, Mode: ViewLive, NowMs: now,
	})

	assert.Equal(t, BadgeWarn, res.Badge)
	assert.Equal(t, "Temperature spiked to 23.0°C just now.", res.Message)
}

func TestSummarizeDayRange(t *testing.T) {
	common.SetTestLoggerNop()
	mon := GetBareMonitor()

	now := int64(100_000_000)
	rows := []models.Reading{
		tempReadingAt(now-3*60*60_000, 20.0),
		tempReadingAt(now-2*60*60_000, 26.0),
		tempReadingAt(now-1*60*60_000, 23.0),
	}

	res := mon.Narrative.Summarize(NarrativeRequest{
		DeviceName: "office", Rows: rows, Mode: ViewDay, NowMs: now,
	})

	assert.Equal(t, "Today", res.Title)
	assert.Equal(t, BadgeOK, res.Badge)
	assert.Equal(t, "Temperature ranged 20.0-26.0°C (avg 23.0°C).", res.Message)
}

func TestSummarizeDayFlagsWideSwing(t *testing.T) {
	common.SetTestLoggerNop()
	mon := GetBareMonitor()

	now := int64(100_000_000)
	rows := []models.Reading{
		tempReadingAt(now-2*60*60_000, 15.0),
		tempReadingAt(now-1*60*60_000, 32.0),
	}

	res := mon.Narrative.Summarize(NarrativeRequest{
		DeviceName: "office", Rows: rows, Mode: ViewDay, NowMs: now,
	})

	assert.Equal(t, BadgeWarn, res.Badge)
}

func TestSummarizeRangeHonorsBounds(t *testing.T) {
	common.SetTestLoggerNop()
	mon := GetBareMonitor()

	now := int64(100_000_000)
	rows := []models.Reading{
		tempReadingAt(now-50*60_000, 10.0),
		tempReadingAt(now-20*60_000, 22.0),
		tempReadingAt(now-10*60_000, 24.0),
	}

	// the old outlier sits outside the requested window
	res := mon.Narrative.Summarize(NarrativeRequest{
		DeviceName: "office", Rows: rows, Mode: ViewRange,
		NowMs: now, FromMs: now - 30*60_000, ToMs: now,
	})

	assert.Equal(t, "Selected range", res.Title)
	assert.Equal(t, BadgeOK, res.Badge)
	assert.Equal(t, "Temperature ranged 22.0-24.0°C (avg 23.0°C).", res.Message)
}

func TestSummarizeNoData(t *testing.T) {
	common.SetTestLoggerNop()
	mon := GetBareMonitor()

	res := mon.Narrative.Summarize(NarrativeRequest{
		DeviceName: "office", Mode: ViewLive, NowMs: 100_000_000,
	})

	assert.Equal(t, BadgeOK, res.Badge)
	assert.Equal(t, "No data available for office.", res.Message)
}

func TestSummarizeJapanese(t *testing.T) {
	common.SetTestLoggerNop()
	mon := GetBareMonitor()

	now := int64(100_000_000)
	var rows []models.Reading
	for i := 0; i < 10; i++ {
		rows = append(rows, tempReadingAt(now-int64(9-i)*60_000, 21.0))
	}

	res := mon.Narrative.Summarize(NarrativeRequest{
		DeviceName: "office", Rows: rows, Mode: ViewLive, NowMs: now, Lang: i18n.LangJP,
	})

	assert.Equal(t, "ライブ", res.Title)
	assert.Equal(t, i18n.LangJP, res.Lang)
	assert.Contains(t, res.Message, "安定")
}
