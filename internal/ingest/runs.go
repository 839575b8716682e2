package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Run outcomes recorded in ingest_runs.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// RunRecord is the durable bookkeeping row for one feed batch.
type RunRecord struct {
	RunID      uuid.UUID
	Feed       string
	Records    int64
	Outcome    string
	StartedAt  time.Time
	FinishedAt time.Time
}

// RunStore records batch outcomes. It writes outside the batch's unit of
// work so a failed batch still leaves its run row behind.
type RunStore interface {
	Record(ctx context.Context, run RunRecord) error
}

// PostgresRunStore persists run rows on the shared pool, never inside a
// batch transaction.
type PostgresRunStore struct {
	db *sql.DB
}

func NewPostgresRunStore(db *sql.DB) *PostgresRunStore {
	return &PostgresRunStore{db: db}
}

func (s *PostgresRunStore) Record(ctx context.Context, run RunRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ingest_runs (run_id, feed, records, outcome, started_at, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		run.RunID, run.Feed, run.Records, run.Outcome, run.StartedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("record ingest run: %w", err)
	}
	return nil
}

// MemoryRunStore collects run rows for tests.
type MemoryRunStore struct {
	mu   sync.RWMutex
	runs []RunRecord
}

func NewMemoryRunStore() *MemoryRunStore {
	return &MemoryRunStore{}
}

func (s *MemoryRunStore) Record(_ context.Context, run RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

// All returns a copy of the recorded runs.
func (s *MemoryRunStore) All() []RunRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]RunRecord{}, s.runs...)
}
