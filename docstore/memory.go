package docstore

import (
	"context"
	"sort"
	"sync"

	"github.com/KidawR/MainProgect/models"
)

// MemoryStore is a process-local Store. It backs tests and keeps the API
// usable when MongoDB is unreachable at startup.
type MemoryStore struct {
	mu      sync.RWMutex
	reviews []models.Review
	logs    []models.ActionLog

	reviewErr error
	logErr    error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// FailReviews makes review writes return err. Pass nil to recover.
func (s *MemoryStore) FailReviews(err error) {
	s.mu.Lock()
	s.reviewErr = err
	s.mu.Unlock()
}

// FailLogs makes log writes return err. Pass nil to recover.
func (s *MemoryStore) FailLogs(err error) {
	s.mu.Lock()
	s.logErr = err
	s.mu.Unlock()
}

func (s *MemoryStore) InsertReview(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reviewErr != nil {
		return s.reviewErr
	}
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *MemoryStore) FindReviews(_ context.Context, branchID *uint) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Review{}
	for _, r := range s.reviews {
		if branchID != nil && r.BranchID != *branchID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *MemoryStore) InsertLog(_ context.Context, entry *models.ActionLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.logErr != nil {
		return s.logErr
	}
	s.logs = append(s.logs, *entry)
	return nil
}

func (s *MemoryStore) FindLogs(_ context.Context, filter models.LogFilter) ([]models.ActionLog, error) {
	s.mu.RLock()
	out := []models.ActionLog{}
	for _, l := range s.logs {
		if filter.UserID != nil && l.UserID != *filter.UserID {
			continue
		}
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		out = append(out, l)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
