package monitor

import (
	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/common"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
)

func (m *Monitor) registerDevice(deviceID, name string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReading),
	)

	device := models.Device{
		DeviceID: deviceID,
		Name:     name,
	}

	err := m.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}},
		UpdateAll: true,
	}).Create(&device).Error

	if err == nil {
		logger.Info("Registered device", zap.Reflect("device", device))
	}

	return err
}

func (m *Monitor) storeReading(deviceID string, input *models.Reading) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReading),
	)

	reading := models.Reading{
		DeviceID:    deviceID,
		Timestamp:   input.Timestamp,
		Temperature: input.Temperature,
		Humidity:    input.Humidity,
		Pressure:    input.Pressure,
		Light:       input.Light,
	}

	logger.Info("Received reading for device", zap.Reflect("reading", reading))

	if err := m.Db.Conn.Create(&reading).Error; err != nil {
		return err
	}

	logger.Info("Stored reading for device", zap.Reflect("reading", reading))
	return nil
}

func (m *Monitor) deviceRows(deviceID string, limit int) (string, []models.Reading, error) {
	var device models.Device
	if err := m.Db.Conn.First(&device, "device_id = ?", deviceID).Error; err != nil {
		return "", nil, err
	}

	var rows []models.Reading
	err := m.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return "", nil, err
	}

	reverseRows(rows)
	return device.Name, rows, nil
}

func reverseRows(rows []models.Reading) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}

type IReadingImpl struct {
	monitor *Monitor
}

func (ir *IReadingImpl) RegisterDevice(deviceID, name string) error {
	return ir.monitor.registerDevice(deviceID, name)
}

func (ir *IReadingImpl) StoreReading(deviceID string, input *models.Reading) error {
	return ir.monitor.storeReading(deviceID, input)
}

func (ir *IReadingImpl) DeviceRows(deviceID string, limit int) (string, []models.Reading, error) {
	return ir.monitor.deviceRows(deviceID, limit)
}

func (ir *IReadingImpl) Snapshots(limit int) ([]DeviceSnapshot, error) {
	return ir.monitor.snapshots(limit)
}

func (m *Monitor) GetIReading() IReading {
	return &IReadingImpl{monitor: m}
}
