package monitor

import (
	"go.uber.org/zap"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/common"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/i18n"
)

// checkOffline evaluates one device's data-age condition and returns a
// candidate when it should surface this cycle.
func (m *Monitor) checkOffline(snap DeviceSnapshot, p EvalParams, lang i18n.Lang) *candidate {
	key := OfflineKey(snap.DeviceID)

	var ageMs int64
	if snap.LastDataMs == nil {
		// A device with no data at all is treated as maximally
		// offline rather than silently skipped.
		ageMs = p.OfflineAlertMs + 1
	} else {
		ageMs = p.NowMs - *snap.LastDataMs
	}

	if ageMs < p.OfflineWarnMs {
		// recovered: the next offline period restarts its own clock
		if _, ok := m.Events.Lookup(key); ok {
			m.Events.Clear(key)
		}
		return nil
	}

	st := m.Events.GetOrInit(key)
	st.markActive(p.NowMs)

	stage := stageWarn
	if ageMs >= p.OfflineAlertMs {
		stage = stageModal
	}
	if st.LastFiredStage > stage {
		stage = st.LastFiredStage
	}

	if st.Snoozed(p.NowMs, p.SnoozeMs) {
		return nil
	}
	st.LastFiredStage = stage

	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryOffline),
	)
	logger.Info("Offline condition active",
		zap.String("device_id", snap.DeviceID),
		zap.Int64("age_ms", ageMs),
		zap.Int("stage", stage))

	name := displayName(snap)
	var text string
	if stage >= stageModal {
		text = i18n.Render(lang, i18n.KindOfflineAlert, i18n.Params{Device: name, Minutes: ageMs / 60_000})
	} else {
		text = i18n.Render(lang, i18n.KindOfflineWarn, i18n.Params{Device: name, Seconds: ageMs / 1000})
	}

	return &candidate{
		stage:       stage,
		text:        text,
		eventKey:    key,
		deviceName:  name,
		firstSeenMs: *st.FirstSeenMs,
	}
}
