package store

import (
	"context"
	"database/sql"

	"opendisclosure/internal/ledger/models"
)

// ContributionStore appends contribution rows. Insert assigns the ID.
type ContributionStore interface {
	Insert(ctx context.Context, c *models.Contribution) error
}

// PaymentStore appends payment rows. Insert assigns the ID.
type PaymentStore interface {
	Insert(ctx context.Context, p *models.Payment) error
}

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
