package poller

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/common"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/config"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/i18n"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/metrics"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/monitor"
)

// Poller drives the monitor engine on a fixed cadence. Evaluation is
// strictly serialized: a tick arriving while the previous cycle is
// still running is skipped, never queued.
type Poller struct {
	Mon *monitor.Monitor
	Cfg *config.Config

	evalMu sync.Mutex

	resultMu sync.RWMutex
	last     monitor.EvalResult

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func New(mon *monitor.Monitor, cfg *config.Config) *Poller {
	return &Poller{
		Mon:  mon,
		Cfg:  cfg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start launches the fixed-interval loop.
func (p *Poller) Start() {
	logger := common.GetLoggerWith(common.LoggerNamePoller)
	interval := time.Duration(p.Cfg.Monitor.PollIntervalMs) * time.Millisecond
	logger.Info("Poller starting", zap.Duration("interval", interval))

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.TryCycle()
			}
		}
	}()
}

// Stop halts the loop and waits for the in-flight cycle, if any.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}

// TryCycle runs one cycle unless one is already in flight.
func (p *Poller) TryCycle() {
	if !p.evalMu.TryLock() {
		metrics.ObserveSkippedCycle()
		common.GetLoggerWith(common.LoggerNamePoller).Warn("Skipping cycle, previous still running")
		return
	}
	defer p.evalMu.Unlock()

	if _, err := p.runCycleLocked(""); err != nil {
		common.GetLoggerWith(common.LoggerNamePoller).Error("Cycle failed", zap.Error(err))
	}
}

// Acknowledge applies an operator acknowledgement through an immediate
// evaluation, guaranteeing the event is muted before the next natural
// tick.
func (p *Poller) Acknowledge(eventKey string) (monitor.EvalResult, error) {
	p.evalMu.Lock()
	defer p.evalMu.Unlock()
	return p.runCycleLocked(eventKey)
}

// RunCycle runs one guarded evaluation immediately.
func (p *Poller) RunCycle() (monitor.EvalResult, error) {
	p.evalMu.Lock()
	defer p.evalMu.Unlock()
	return p.runCycleLocked("")
}

// runCycleLocked gathers snapshots and evaluates. All device I/O
// completes before the engine call; the evaluation itself never
// blocks. Caller holds evalMu.
func (p *Poller) runCycleLocked(ackEventKey string) (monitor.EvalResult, error) {
	snapshots, err := p.Mon.Reading.Snapshots(p.Cfg.Monitor.SnapshotRows)
	if err != nil {
		return monitor.EvalResult{}, err
	}

	result := p.Mon.Engine.Evaluate(snapshots, p.params(ackEventKey))

	p.resultMu.Lock()
	p.last = result
	p.resultMu.Unlock()
	return result, nil
}

func (p *Poller) params(ackEventKey string) monitor.EvalParams {
	m := p.Cfg.Monitor
	return monitor.EvalParams{
		NowMs:           time.Now().UnixMilli(),
		Lang:            i18n.Lang(m.Language),
		OfflineWarnMs:   m.OfflineWarnMs,
		OfflineAlertMs:  m.OfflineAlertMs,
		QuietWindowMs:   m.QuietWindowMs,
		PersistWindowMs: m.PersistWindowMs,
		SnoozeMs:        m.SnoozeMs,
		AckEventKey:     ackEventKey,
		Thresholds:      thresholdsFromConfig(p.Cfg),
	}
}

// Last returns the most recent evaluation result.
func (p *Poller) Last() monitor.EvalResult {
	p.resultMu.RLock()
	defer p.resultMu.RUnlock()
	return p.last
}

func thresholdsFromConfig(cfg *config.Config) map[models.Signal]monitor.SignalThresholds {
	if len(cfg.Signals) == 0 {
		return nil
	}
	thresholds := monitor.DefaultThresholds()
	for name, sig := range cfg.Signals {
		thresholds[models.Signal(name)] = monitor.SignalThresholds{
			Step:      sig.Step,
			Window5m:  sig.Window5m,
			Window10m: sig.Window10m,
		}
	}
	return thresholds
}
