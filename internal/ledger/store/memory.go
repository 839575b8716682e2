package store

import (
	"context"
	"sync"

	"opendisclosure/internal/ledger/models"
)

// MemoryContributionStore keeps contribution rows in a slice for tests.
type MemoryContributionStore struct {
	mu   sync.RWMutex
	rows []models.Contribution
}

func NewMemoryContributions() *MemoryContributionStore {
	return &MemoryContributionStore{}
}

func (s *MemoryContributionStore) Insert(_ context.Context, c *models.Contribution) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = int64(len(s.rows) + 1)
	s.rows = append(s.rows, *c)
	return nil
}

// All returns a copy of the stored rows.
func (s *MemoryContributionStore) All() []models.Contribution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Contribution{}, s.rows...)
}

// MemoryPaymentStore keeps payment rows in a slice for tests.
type MemoryPaymentStore struct {
	mu   sync.RWMutex
	rows []models.Payment
}

func NewMemoryPayments() *MemoryPaymentStore {
	return &MemoryPaymentStore{}
}

func (s *MemoryPaymentStore) Insert(_ context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = int64(len(s.rows) + 1)
	s.rows = append(s.rows, *p)
	return nil
}

// All returns a copy of the stored rows.
func (s *MemoryPaymentStore) All() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Payment{}, s.rows...)
}
