package ingest

import (
	"context"
	"database/sql"
	"fmt"

	ledgerstore "opendisclosure/internal/ledger/store"
	partystore "opendisclosure/internal/party/store"
	summarystore "opendisclosure/internal/summary/store"
)

// Stores bundles the batch-scoped stores a record handler writes through.
type Stores struct {
	Parties       partystore.Store
	Contributions ledgerstore.ContributionStore
	Payments      ledgerstore.PaymentStore
	Summaries     summarystore.Store
}

// UnitOfWork scopes one feed batch's persistence effects. Implementations
// decide the commit granularity: the Postgres unit of work commits the whole
// batch atomically, the in-memory one commits per record.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
}

// PostgresUnitOfWork wraps each batch in a single transaction. A failed
// batch leaves no partial effects behind.
type PostgresUnitOfWork struct {
	db *sql.DB
}

func NewPostgresUnitOfWork(db *sql.DB) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{db: db}
}

func (u *PostgresUnitOfWork) Run(ctx context.Context, fn func(ctx context.Context, s Stores) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch transaction: %w", err)
	}

	stores := Stores{
		Parties:       partystore.NewPostgres(tx),
		Contributions: ledgerstore.NewPostgresContributions(tx),
		Payments:      ledgerstore.NewPostgresPayments(tx),
		Summaries:     summarystore.NewPostgres(tx),
	}
	if err := fn(ctx, stores); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch transaction: %w", err)
	}
	return nil
}

// MemoryUnitOfWork hands out shared in-memory stores. Effects are visible
// per record and survive a failed batch; tests and dry runs accept that.
type MemoryUnitOfWork struct {
	stores Stores
}

func NewMemoryUnitOfWork() *MemoryUnitOfWork {
	return &MemoryUnitOfWork{stores: Stores{
		Parties:       partystore.NewMemory(),
		Contributions: ledgerstore.NewMemoryContributions(),
		Payments:      ledgerstore.NewMemoryPayments(),
		Summaries:     summarystore.NewMemory(),
	}}
}

func (u *MemoryUnitOfWork) Run(ctx context.Context, fn func(ctx context.Context, s Stores) error) error {
	return fn(ctx, u.stores)
}

// Stores exposes the shared stores for test assertions.
func (u *MemoryUnitOfWork) Stores() Stores {
	return u.stores
}
