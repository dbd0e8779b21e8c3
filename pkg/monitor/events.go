package monitor

import (
	"fmt"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
)

// EventState is the engine-owned bookkeeping for one monitored
// condition. FirstSeenMs marks the start of the current continuous
// occurrence and is nil while the condition is inactive.
type EventState struct {
	FirstSeenMs    *int64
	LastSeenMs     int64
	LastFiredStage int
	LastAckMs      *int64
}

// Snoozed reports whether an acknowledgement is still muting this
// event. Detection bookkeeping is unaffected by snoozing.
func (st *EventState) Snoozed(nowMs, snoozeMs int64) bool {
	return st.LastAckMs != nil && nowMs-*st.LastAckMs < snoozeMs
}

// markActive records one active observation.
func (st *EventState) markActive(nowMs int64) {
	if st.FirstSeenMs == nil {
		first := nowMs
		st.FirstSeenMs = &first
	}
	st.LastSeenMs = nowMs
}

// EventStore maps event keys to their state. It is owned exclusively
// by one engine instance; no ambient global.
type EventStore struct {
	states map[string]*EventState
}

func NewEventStore() *EventStore {
	return &EventStore{states: make(map[string]*EventState)}
}

// GetOrInit returns the single state for a key, creating it inactive
// on first use.
func (s *EventStore) GetOrInit(key string) *EventState {
	st, ok := s.states[key]
	if !ok {
		st = &EventState{}
		s.states[key] = st
	}
	return st
}

// Lookup returns the state without creating it.
func (s *EventStore) Lookup(key string) (*EventState, bool) {
	st, ok := s.states[key]
	return st, ok
}

// Acknowledge records a human acknowledgement, starting the snooze
// window.
func (s *EventStore) Acknowledge(key string, nowMs int64) {
	st := s.GetOrInit(key)
	ack := nowMs
	st.LastAckMs = &ack
}

// Clear marks the condition resolved. The next occurrence restarts its
// own first-seen clock and severity from zero. The acknowledgement
// time is kept so a snooze outlives a brief recovery.
func (s *EventStore) Clear(key string) {
	st, ok := s.states[key]
	if !ok {
		return
	}
	st.FirstSeenMs = nil
	st.LastSeenMs = 0
	st.LastFiredStage = 0
}

// OfflineKey is the event key of a device's offline condition.
func OfflineKey(deviceID string) string {
	return deviceID + ":offline"
}

// AnomalyKey is the event key of one device signal's anomaly condition.
func AnomalyKey(deviceID string, sig models.Signal) string {
	return fmt.Sprintf("%s:%s:anomaly", deviceID, sig)
}
