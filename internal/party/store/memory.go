package store

import (
	"context"
	"sync"

	"opendisclosure/internal/party/models"
)

// MemoryStore keeps parties in a map keyed by their lookup tuple. It favors
// clarity over performance and backs the unit tests.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	parties map[models.LookupKey]*models.Party
}

func NewMemory() *MemoryStore {
	return &MemoryStore{parties: make(map[models.LookupKey]*models.Party)}
}

func (s *MemoryStore) FindOrCreate(_ context.Context, p *models.Party) (*models.Party, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := p.Key()
	if existing, ok := s.parties[key]; ok {
		cp := *existing
		return &cp, false, nil
	}

	s.nextID++
	created := *p
	created.ID = s.nextID
	s.parties[key] = &created

	cp := created
	return &cp, true, nil
}

// Len reports the number of stored parties, for test assertions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.parties)
}

// Find returns the stored party for a lookup key, if any.
func (s *MemoryStore) Find(key models.LookupKey) (*models.Party, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.parties[key]; ok {
		cp := *p
		return &cp, true
	}
	return nil, false
}
