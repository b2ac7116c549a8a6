package progress

import (
	"context"
	"sync"

	"github.com/tatianab/pitch-puzzle/internal/models"
)

// MemoryStore is an in-process Store, used in tests and simulations.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]models.Progress
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]models.Progress)}
}

func (s *MemoryStore) Get(_ context.Context, date string) (models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[Key(date)]
	if !ok {
		return models.Progress{}, ErrNotFound
	}
	return rec, nil
}

func (s *MemoryStore) Put(_ context.Context, date string, rec models.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[Key(date)] = rec
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, Key(date))
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
