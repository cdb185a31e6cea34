package audit

import (
	"context"
	"sync"

	"github.com/KidawR/MainProgect/models"
)

// MemorySink collects records in memory. Setting Fail makes every write
// return that error, which simulates an unreachable log store.
type MemorySink struct {
	mu      sync.Mutex
	entries []models.ActionLog
	fail    error
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) InsertLog(_ context.Context, entry *models.ActionLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail != nil {
		return s.fail
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *MemorySink) Fail(err error) {
	s.mu.Lock()
	s.fail = err
	s.mu.Unlock()
}

func (s *MemorySink) Entries() []models.ActionLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ActionLog, len(s.entries))
	copy(out, s.entries)
	return out
}

// Actions returns the action names in delivery order.
func (s *MemorySink) Actions() []string {
	entries := s.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Action
	}
	return out
}
