package monitor

import (
	"math"

	"go.uber.org/zap"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/common"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/i18n"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/series"
)

type ViewMode string

const (
	ViewLive  ViewMode = "live"
	ViewDay   ViewMode = "day"
	ViewRange ViewMode = "range"
)

const (
	BadgeOK   = "ok"
	BadgeWarn = "warn"
)

// spikeZScore is the dispersion cutoff of the narrative feed. This
// check is deliberately more sensitive than the engine thresholds and
// never produces a global notification.
const spikeZScore = 2.5

const narrativeWindowMs = window10mMs

type NarrativeRequest struct {
	DeviceName string
	Rows       []models.Reading
	Mode       ViewMode
	NowMs      int64
	FromMs     int64
	ToMs       int64
	Lang       i18n.Lang
}

type NarrativeResult struct {
	Title   string    `json:"title"`
	Badge   string    `json:"badge"`
	Message string    `json:"message"`
	Lang    i18n.Lang `json:"lang"`
}

var viewTitles = map[i18n.Lang]map[ViewMode]string{
	i18n.LangEN: {ViewLive: "Live view", ViewDay: "Today", ViewRange: "Selected range"},
	i18n.LangJP: {ViewLive: "ライブ", ViewDay: "本日", ViewRange: "選択期間"},
}

// summarize produces the one-sentence narrative for a single device's
// current view.
func (m *Monitor) summarize(req NarrativeRequest) NarrativeResult {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryNarrative),
	)
	logger.Info("Building narrative",
		zap.String("device", req.DeviceName),
		zap.String("mode", string(req.Mode)),
		zap.Int("rows", len(req.Rows)))

	lang := i18n.Resolve(req.Lang, m.Locale)

	result := NarrativeResult{
		Title: viewTitles[lang][req.Mode],
		Badge: BadgeOK,
		Lang:  lang,
	}

	sig, points := primarySeries(req.Rows)
	if len(points) == 0 {
		result.Message = i18n.Render(lang, i18n.KindNarrativeNoData, i18n.Params{Device: req.DeviceName})
		return result
	}

	if req.Mode == ViewLive {
		return m.summarizeLive(result, sig, points, lang)
	}
	return m.summarizeWindow(req, result, sig, points, lang)
}

func (m *Monitor) summarizeLive(result NarrativeResult, sig models.Signal, points []series.Point, lang i18n.Lang) NarrativeResult {
	th := DefaultThresholds()[sig]
	last := points[len(points)-1]

	if z, ok := series.ZScore(points, minWindowSamples); ok && math.Abs(z) >= spikeZScore {
		result.Badge = BadgeWarn
		result.Message = i18n.Render(lang, i18n.KindNarrativeSpike, i18n.Params{
			Signal: sig, Value: last.Value,
		})
		return result
	}

	if d, ok := series.WindowDelta(points, last.TimeMs, narrativeWindowMs); ok && math.Abs(d) >= th.Window10m/2 {
		if math.Abs(d) >= th.Window10m {
			result.Badge = BadgeWarn
		}
		kind := i18n.KindNarrativeRise
		if d < 0 {
			kind = i18n.KindNarrativeFall
		}
		result.Message = i18n.Render(lang, kind, i18n.Params{
			Signal: sig, Delta: d, WindowMinutes: narrativeWindowMs / 60_000,
		})
		return result
	}

	result.Message = i18n.Render(lang, i18n.KindNarrativeSteady, i18n.Params{
		Signal: sig, Value: last.Value,
	})
	return result
}

func (m *Monitor) summarizeWindow(req NarrativeRequest, result NarrativeResult, sig models.Signal, points []series.Point, lang i18n.Lang) NarrativeResult {
	fromMs := req.FromMs
	toMs := req.ToMs
	if req.Mode == ViewDay {
		fromMs = req.NowMs - 24*60*60*1000
		toMs = req.NowMs
	}
	if toMs == 0 {
		toMs = req.NowMs
	}

	values := make([]float64, 0, len(points))
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, pt := range points {
		if pt.TimeMs < fromMs || pt.TimeMs > toMs {
			continue
		}
		values = append(values, pt.Value)
		min = math.Min(min, pt.Value)
		max = math.Max(max, pt.Value)
	}
	if len(values) == 0 {
		result.Message = i18n.Render(lang, i18n.KindNarrativeNoData, i18n.Params{Device: req.DeviceName})
		return result
	}

	mean, _ := series.MeanStdDev(values)
	if max-min >= DefaultThresholds()[sig].Window10m*2 {
		result.Badge = BadgeWarn
	}
	result.Message = i18n.Render(lang, i18n.KindNarrativeSummary, i18n.Params{
		Signal: sig, Min: min, Max: max, Mean: mean,
	})
	return result
}

// primarySeries picks the first signal with any usable points, in the
// fixed signal order.
func primarySeries(rows []models.Reading) (models.Signal, []series.Point) {
	for _, sig := range models.Signals() {
		if points := series.FromReadings(rows, sig); len(points) > 0 {
			return sig, points
		}
	}
	return models.SignalTemperature, nil
}

type INarrativeImpl struct {
	monitor *Monitor
}

func (in *INarrativeImpl) Summarize(req NarrativeRequest) NarrativeResult {
	return in.monitor.summarize(req)
}

func (m *Monitor) GetINarrative() INarrative {
	return &INarrativeImpl{monitor: m}
}
