package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root monitor configuration file.
type Config struct {
	Monitor MonitorConfig           `yaml:"monitor"`
	Signals map[string]SignalConfig `yaml:"signals"`
}

// MonitorConfig holds the engine and poller tunables. All windows are
// plain milliseconds so the file maps one-to-one onto evaluation
// parameters.
type MonitorConfig struct {
	PollIntervalMs  int64  `yaml:"poll_interval_ms"`
	OfflineWarnMs   int64  `yaml:"offline_warn_ms"`
	OfflineAlertMs  int64  `yaml:"offline_alert_ms"`
	QuietWindowMs   int64  `yaml:"quiet_window_ms"`
	PersistWindowMs int64  `yaml:"persist_window_ms"`
	SnoozeMs        int64  `yaml:"snooze_ms"`
	SnapshotRows    int    `yaml:"snapshot_rows"`
	Language        string `yaml:"language"`
}

// SignalConfig holds the anomaly thresholds for one signal.
type SignalConfig struct {
	Step      float64 `yaml:"step"`
	Window5m  float64 `yaml:"window_5m"`
	Window10m float64 `yaml:"window_10m"`
}

// Default returns the built-in configuration used when no file is
// supplied.
func Default() *Config {
	return &Config{
		Monitor: MonitorConfig{
			PollIntervalMs:  15_000,
			OfflineWarnMs:   45_000,
			OfflineAlertMs:  300_000,
			QuietWindowMs:   120_000,
			PersistWindowMs: 1_800_000,
			SnoozeMs:        600_000,
			SnapshotRows:    60,
			Language:        "auto",
		},
		Signals: map[string]SignalConfig{
			"temperature": {Step: 3.0, Window5m: 5.0, Window10m: 8.0},
			"humidity":    {Step: 10.0, Window5m: 15.0, Window10m: 20.0},
			"pressure":    {Step: 3.0, Window5m: 5.0, Window10m: 8.0},
			"light":       {Step: 300.0, Window5m: 500.0, Window10m: 800.0},
		},
	}
}

// Load reads a yaml config file, layering it over the defaults. A
// missing path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	m := c.Monitor
	if m.PollIntervalMs <= 0 {
		return fmt.Errorf("poll_interval_ms must be positive, got %d", m.PollIntervalMs)
	}
	if m.OfflineWarnMs <= 0 || m.OfflineAlertMs <= 0 {
		return fmt.Errorf("offline thresholds must be positive")
	}
	if m.OfflineAlertMs < m.OfflineWarnMs {
		return fmt.Errorf("offline_alert_ms %d below offline_warn_ms %d", m.OfflineAlertMs, m.OfflineWarnMs)
	}
	if m.SnapshotRows <= 0 {
		return fmt.Errorf("snapshot_rows must be positive, got %d", m.SnapshotRows)
	}
	for name, sig := range c.Signals {
		if sig.Step <= 0 || sig.Window5m <= 0 || sig.Window10m <= 0 {
			return fmt.Errorf("signal %s: thresholds must be positive", name)
		}
	}
	return nil
}
