package monitor

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/db"
)

// GetMonitorWithMemorySqliteDialector builds a Monitor with real
// services over the shared in-memory database. Mock-backed monitors
// live with the packages that consume this one; wiring them here would
// cycle through pkg/monitor/mocks.
func GetMonitorWithMemorySqliteDialector() *Monitor {
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	m := &Monitor{Db: *dbInstance, Events: NewEventStore()}
	return m.WithServices(ServiceOpts{
		Engine:    m.GetIEngine(),
		Narrative: m.GetINarrative(),
		Reading:   m.GetIReading(),
	})
}

// GetBareMonitor builds a Monitor without database wiring, enough for
// engine and narrative paths that only consume snapshots.
func GetBareMonitor() *Monitor {
	m := &Monitor{Events: NewEventStore()}
	return m.WithServices(ServiceOpts{
		Engine:    m.GetIEngine(),
		Narrative: m.GetINarrative(),
	})
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
