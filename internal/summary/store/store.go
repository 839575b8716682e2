package store

import (
	"context"
	"database/sql"
	"time"

	"opendisclosure/internal/summary/models"
)

// Store resolves the roll-up row for a (filer, date) pair, creating it if
// absent, and sets one field on it. Last write wins per field; no summing.
type Store interface {
	SetField(ctx context.Context, filerID string, date time.Time, field models.Field, amount float64) error
}

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
