package store

import (
	"context"
	"fmt"
	"time"

	"opendisclosure/internal/summary/models"
)

// PostgresStore persists summary roll-up rows in PostgreSQL.
type PostgresStore struct {
	db DBTX
}

func NewPostgres(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

// SetField upserts the (filer, date) row and overwrites one column. The
// column name is interpolated, which is safe because Field values only come
// from the closed SummaryLines mapping.
func (s *PostgresStore) SetField(ctx context.Context, filerID string, date time.Time, field models.Field, amount float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO summaries (filer_id, date) VALUES ($1, $2)
		 ON CONFLICT (filer_id, date) DO NOTHING`,
		filerID, date)
	if err != nil {
		return fmt.Errorf("create summary row: %w", err)
	}

	query := fmt.Sprintf(
		`UPDATE summaries SET %s = $3 WHERE filer_id = $1 AND date = $2`, field)
	if _, err := s.db.ExecContext(ctx, query, filerID, date, amount); err != nil {
		return fmt.Errorf("set summary field %s: %w", field, err)
	}
	return nil
}
