package monitor

import (
	"math"

	"go.uber.org/zap"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/common"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/i18n"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/series"
)

const (
	// minimum sample counts before a detector may fire, to keep
	// sparse uploads from producing false positives
	minStepSamples   = 3
	minWindowSamples = 10

	window5mMs  = 5 * 60 * 1000
	window10mMs = 10 * 60 * 1000
)

// checkAnomaly evaluates one device signal against its step and
// windowed delta thresholds.
func (m *Monitor) checkAnomaly(snap DeviceSnapshot, sig models.Signal, th SignalThresholds, p EvalParams, lang i18n.Lang) *candidate {
	key := AnomalyKey(snap.DeviceID, sig)
	points := series.FromReadings(snap.Rows, sig)

	// Reporting preference when several deltas trip at once:
	// step beats the 5-minute window beats the 10-minute window.
	active := false
	var reported float64
	if len(points) >= minStepSamples {
		if d, ok := series.StepDelta(points); ok && math.Abs(d) >= th.Step {
			active = true
			reported = d
		}
	}
	if len(points) >= minWindowSamples {
		if d, ok := series.WindowDelta(points, p.NowMs, window5mMs); ok && math.Abs(d) >= th.Window5m {
			if !active {
				reported = d
			}
			active = true
		}
		if d, ok := series.WindowDelta(points, p.NowMs, window10mMs); ok && math.Abs(d) >= th.Window10m {
			if !active {
				reported = d
			}
			active = true
		}
	}

	if !active {
		// Clear only after a full quiet window, so a momentary dip
		// below threshold does not reset the first-seen clock.
		if st, ok := m.Events.Lookup(key); ok && st.FirstSeenMs != nil {
			if p.NowMs-st.LastSeenMs > p.QuietWindowMs {
				m.Events.Clear(key)
			}
		}
		return nil
	}

	st := m.Events.GetOrInit(key)
	st.markActive(p.NowMs)
	seenForMs := p.NowMs - *st.FirstSeenMs

	// Any real threshold breach blocks; persistence escalates it.
	stage := stageModal
	if seenForMs >= p.PersistWindowMs {
		stage = stageCritical
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
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAnomaly),
	)
	logger.Info("Anomaly condition active",
		zap.String("device_id", snap.DeviceID),
		zap.String("signal", string(sig)),
		zap.Float64("delta", reported),
		zap.Int("stage", stage))

	name := displayName(snap)
	var text string
	if stage >= stageCritical {
		minutes := seenForMs / 60_000
		if floor := p.PersistWindowMs / 60_000; minutes < floor {
			minutes = floor
		}
		text = i18n.Render(lang, i18n.KindAnomalyPersisted, i18n.Params{
			Device: name, Signal: sig, Delta: reported, Minutes: minutes,
		})
	} else {
		text = i18n.Render(lang, i18n.KindAnomalyRepeated, i18n.Params{
			Device: name, Signal: sig, Delta: reported,
		})
	}

	return &candidate{
		stage:       stage,
		text:        text,
		eventKey:    key,
		deviceName:  name,
		signal:      sig,
		firstSeenMs: *st.FirstSeenMs,
	}
}
