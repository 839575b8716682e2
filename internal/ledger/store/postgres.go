package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"opendisclosure/internal/ledger/models"
)

// PostgresContributionStore persists contribution rows in PostgreSQL.
type PostgresContributionStore struct {
	db DBTX
}

func NewPostgresContributions(db DBTX) *PostgresContributionStore {
	return &PostgresContributionStore{db: db}
}

func (s *PostgresContributionStore) Insert(ctx context.Context, c *models.Contribution) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO contributions (recipient_id, contributor_id, amount, date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		c.RecipientID, nullID(c.ContributorID), c.Amount, nullDate(c.Date),
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert contribution: %w", err)
	}
	return nil
}

// PostgresPaymentStore persists payment rows in PostgreSQL.
type PostgresPaymentStore struct {
	db DBTX
}

func NewPostgresPayments(db DBTX) *PostgresPaymentStore {
	return &PostgresPaymentStore{db: db}
}

func (s *PostgresPaymentStore) Insert(ctx context.Context, p *models.Payment) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO payments (payer_id, recipient_id, amount, date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.PayerID, nullID(p.RecipientID), p.Amount, nullDate(p.Date),
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func nullID(value *int64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *value, Valid: true}
}

func nullDate(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
