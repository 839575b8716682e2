package store

import (
	"context"
	"database/sql"
	"errors"

	"opendisclosure/internal/party/models"
)

// ErrNotFound keeps lookup misses consistent across implementations.
var ErrNotFound = errors.New("party not found")

// Store resolves parties by their variant lookup key, creating a row on first
// reference. The bool result reports whether a new row was created.
//
// On a hit the stored row is returned unchanged; the creation-only attributes
// of the argument are ignored.
type Store interface {
	FindOrCreate(ctx context.Context, p *models.Party) (*models.Party, bool, error)
}

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx, so the
// same store runs inside or outside a batch transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
