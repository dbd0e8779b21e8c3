package models

import "time"

// Signal names one of the monitored environmental channels.
type Signal string

const (
	SignalTemperature Signal = "temperature"
	SignalHumidity    Signal = "humidity"
	SignalPressure    Signal = "pressure"
	SignalLight       Signal = "light"
)

// Signals returns all monitored signals in evaluation order.
func Signals() []Signal {
	return []Signal{SignalTemperature, SignalHumidity, SignalPressure, SignalLight}
}

// Unit returns the display unit for a signal.
func (s Signal) Unit() string {
	switch s {
	case SignalTemperature:
		return "°C"
	case SignalHumidity:
		return "%"
	case SignalPressure:
		return "hPa"
	case SignalLight:
		return "lx"
	default:
		return ""
	}
}

type Device struct {
	DeviceID string `gorm:"primaryKey"`
	Name     string

	Readings []Reading `gorm:"foreignKey:DeviceID;references:DeviceID"`
}

// Reading is one stored sample for a device. Signal values are pointers
// because any subset of sensors may be absent on a given upload.
type Reading struct {
	ID          uint      `gorm:"primaryKey"`
	DeviceID    string    `gorm:"index"`
	Timestamp   time.Time `gorm:"index"`
	Temperature *float64
	Humidity    *float64
	Pressure    *float64
	Light       *float64
}

// Value returns the reading's value for a signal, nil when absent.
func (r *Reading) Value(sig Signal) *float64 {
	switch sig {
	case SignalTemperature:
		return r.Temperature
	case SignalHumidity:
		return r.Humidity
	case SignalPressure:
		return r.Pressure
	case SignalLight:
		return r.Light
	default:
		return nil
	}
}
