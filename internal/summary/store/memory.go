package store

import (
	"context"
	"sync"
	"time"

	"opendisclosure/internal/summary/models"
)

type summaryKey struct {
	filerID string
	date    string
}

func keyFor(filerID string, date time.Time) summaryKey {
	return summaryKey{filerID: filerID, date: date.Format("2006-01-02")}
}

// MemoryStore keeps summary rows in a map for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[summaryKey]*models.Summary
}

func NewMemory() *MemoryStore {
	return &MemoryStore{rows: make(map[summaryKey]*models.Summary)}
}

func (s *MemoryStore) SetField(_ context.Context, filerID string, date time.Time, field models.Field, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := keyFor(filerID, date)
	row, ok := s.rows[key]
	if !ok {
		s.nextID++
		row = &models.Summary{ID: s.nextID, FilerID: filerID, Date: date}
		s.rows[key] = row
	}
	row.Set(field, amount)
	return nil
}

// Find returns a copy of the stored row for a (filer, date) pair, if any.
func (s *MemoryStore) Find(filerID string, date time.Time) (*models.Summary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if row, ok := s.rows[keyFor(filerID, date)]; ok {
		cp := *row
		return &cp, true
	}
	return nil, false
}

// Len reports the number of stored rows, for test assertions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}
