package monitor

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/common"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/i18n"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/metrics"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
)

const (
	stageWarn     = 1
	stageModal    = 2
	stageCritical = 3
)

// candidate is one active, non-snoozed condition eligible for
// notification this cycle.
type candidate struct {
	stage       int
	text        string
	eventKey    string
	deviceName  string
	signal      models.Signal
	firstSeenMs int64
}

func displayName(snap DeviceSnapshot) string {
	if snap.Name != "" {
		return snap.Name
	}
	return snap.DeviceID
}

// evaluate runs one full cycle: acknowledge, detect per device,
// arbitrate, and emit at most one notification.
func (m *Monitor) evaluate(snapshots []DeviceSnapshot, p EvalParams) EvalResult {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryEngine),
	)

	// Acknowledge before detection so an operator's dismissal takes
	// effect within the same cycle.
	if p.AckEventKey != "" {
		m.Events.Acknowledge(p.AckEventKey, p.NowMs)
		logger.Info("Event acknowledged", zap.String("event_key", p.AckEventKey))
	}

	lang := i18n.Resolve(p.Lang, m.Locale)
	thresholds := p.Thresholds
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}

	var candidates []candidate
	for _, snap := range snapshots {
		candidates = append(candidates, m.evaluateDevice(snap, p, thresholds, lang, logger)...)
	}

	metrics.ObserveEvaluation()

	result := EvalResult{Lang: lang}
	if len(candidates) == 0 {
		return result
	}

	// Highest severity wins; among equals, the longest-active
	// condition surfaces first.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].stage != candidates[j].stage {
			return candidates[i].stage > candidates[j].stage
		}
		return candidates[i].firstSeenMs < candidates[j].firstSeenMs
	})

	top := candidates[0]
	switch {
	case top.stage >= stageCritical:
		result.Modal = &Notice{Level: LevelCritical, Text: top.text, EventKey: top.eventKey}
		metrics.ObserveNotification("modal", LevelCritical)
	case top.stage == stageModal:
		result.Modal = &Notice{Level: LevelModal, Text: top.text, EventKey: top.eventKey}
		metrics.ObserveNotification("modal", LevelModal)
	default:
		result.Toast = &Notice{Level: LevelWarn, Text: top.text, EventKey: top.eventKey}
		metrics.ObserveNotification("toast", LevelWarn)
	}

	logger.Info("Notification selected",
		zap.String("event_key", top.eventKey),
		zap.Int("stage", top.stage),
		zap.Int("candidates", len(candidates)))

	return result
}

// evaluateDevice contains one device's detection. A panic here is
// logged and must not suppress candidates from other devices.
func (m *Monitor) evaluateDevice(
	snap DeviceSnapshot,
	p EvalParams,
	thresholds map[models.Signal]SignalThresholds,
	lang i18n.Lang,
	logger *zap.Logger,
) (found []candidate) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Device evaluation failed",
				zap.String("device_id", snap.DeviceID),
				zap.Any("panic", r))
		}
	}()

	if c := m.checkOffline(snap, p, lang); c != nil {
		found = append(found, *c)
	}
	for _, sig := range models.Signals() {
		th, ok := thresholds[sig]
		if !ok {
			continue
		}
		if c := m.checkAnomaly(snap, sig, th, p, lang); c != nil {
			found = append(found, *c)
		}
	}
	return found
}

type IEngineImpl struct {
	monitor *Monitor
}

func (ie *IEngineImpl) Evaluate(snapshots []DeviceSnapshot, p EvalParams) EvalResult {
	return ie.monitor.evaluate(snapshots, p)
}

func (m *Monitor) GetIEngine() IEngine {
	return &IEngineImpl{monitor: m}
}
