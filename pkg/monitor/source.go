package monitor

import (
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/series"
)

// snapshots gathers the engine input for every registered device: a
// bounded window of recent rows plus the last-known-data time.
func (m *Monitor) snapshots(limit int) ([]DeviceSnapshot, error) {
	var devices []models.Device
	if err := m.Db.Conn.Order("device_id").Find(&devices).Error; err != nil {
		return nil, err
	}

	snapshots := make([]DeviceSnapshot, 0, len(devices))
	for _, device := range devices {
		var rows []models.Reading
		err := m.Db.Conn.
			Where("device_id = ?", device.DeviceID).
			Order("timestamp desc").
			Limit(limit).
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
		reverseRows(rows)

		snap := DeviceSnapshot{
			DeviceID: device.DeviceID,
			Name:     device.Name,
			Rows:     rows,
		}
		// last-data time stays nil for devices that never reported
		for i := len(rows) - 1; i >= 0; i-- {
			if timeMs, ok := series.EpochMillis(rows[i].Timestamp); ok {
				snap.LastDataMs = &timeMs
				break
			}
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}
