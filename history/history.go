package history

import (
	"sync"
	"time"
)

// Entry records one completed break activity and the gauge readings it
// left behind.
type Entry struct {
	InvocationID string    `json:"invocation_id"`
	Tool         string    `json:"tool"`
	Reduction    int       `json:"reduction"`
	AlertRaised  bool      `json:"boss_alert_raised"`
	Stress       int       `json:"stress_level"`
	AlertLevel   int       `json:"boss_alert_level"`
	Timestamp    time.Time `json:"timestamp"`
}

// Store is a volatile, RWMutex-guarded append-only log of break entries.
// Reads return defensive copies so callers can't mutate internal state.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewStore constructs an empty in-memory history store.
func NewStore() *Store {
	return &Store{}
}

// Append records a completed break.
func (s *Store) Append(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

// Len returns the number of recorded breaks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Recent returns up to n most recent entries, oldest first.
func (s *Store) Recent(n int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, n)
	copy(out, s.entries[len(s.entries)-n:])
	return out
}
