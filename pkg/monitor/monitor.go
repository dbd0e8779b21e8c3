package monitor

import (
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/db"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/i18n"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
)

// DeviceSnapshot is one device's view handed to the engine each cycle:
// identity, a bounded window of recent rows, and the time of the last
// stored reading (nil when the device has never reported).
type DeviceSnapshot struct {
	DeviceID   string
	Name       string
	Rows       []models.Reading
	LastDataMs *int64
}

// SignalThresholds holds the anomaly delta magnitudes for one signal.
type SignalThresholds struct {
	Step      float64
	Window5m  float64
	Window10m float64
}

// DefaultThresholds are the built-in per-signal anomaly thresholds,
// used when the caller supplies none.
func DefaultThresholds() map[models.Signal]SignalThresholds {
	return map[models.Signal]SignalThresholds{
		models.SignalTemperature: {Step: 3.0, Window5m: 5.0, Window10m: 8.0},
		models.SignalHumidity:    {Step: 10.0, Window5m: 15.0, Window10m: 20.0},
		models.SignalPressure:    {Step: 3.0, Window5m: 5.0, Window10m: 8.0},
		models.SignalLight:       {Step: 300.0, Window5m: 500.0, Window10m: 800.0},
	}
}

// EvalParams are the caller-supplied inputs of one evaluation cycle.
type EvalParams struct {
	NowMs           int64
	Lang            i18n.Lang
	OfflineWarnMs   int64
	OfflineAlertMs  int64
	QuietWindowMs   int64
	PersistWindowMs int64
	SnoozeMs        int64
	AckEventKey     string
	Thresholds      map[models.Signal]SignalThresholds
}

const (
	LevelWarn     = "warn"
	LevelModal    = "modal"
	LevelCritical = "critical"
)

// Notice is one displayable notification with finalized text.
type Notice struct {
	Level    string `json:"level"`
	Text     string `json:"text"`
	EventKey string `json:"event_key"`
}

// EvalResult carries at most one of Toast or Modal, never both.
type EvalResult struct {
	Toast *Notice   `json:"toast,omitempty"`
	Modal *Notice   `json:"modal,omitempty"`
	Lang  i18n.Lang `json:"lang"`
}

type IEngine interface {
	Evaluate(snapshots []DeviceSnapshot, p EvalParams) EvalResult
}

type INarrative interface {
	Summarize(req NarrativeRequest) NarrativeResult
}

type IReading interface {
	RegisterDevice(deviceID, name string) error
	StoreReading(deviceID string, input *models.Reading) error
	DeviceRows(deviceID string, limit int) (string, []models.Reading, error)
	Snapshots(limit int) ([]DeviceSnapshot, error)
}

type Monitor struct {
	Db        db.DB
	Events    *EventStore
	Locale    i18n.Detector
	Engine    IEngine
	Narrative INarrative
	Reading   IReading
}

type ServiceOpts struct {
	Engine    IEngine
	Narrative INarrative
	Reading   IReading
}

func (m *Monitor) WithServices(opts ServiceOpts) *Monitor {
	if m.Events == nil {
		m.Events = NewEventStore()
	}
	if opts.Engine != nil {
		m.Engine = opts.Engine
	}
	if opts.Narrative != nil {
		m.Narrative = opts.Narrative
	}
	if opts.Reading != nil {
		m.Reading = opts.Reading
	}
	return m
}
