package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Partial unique indexes enforce each party variant's lookup key at the
// storage level, so find-or-create stays correct even if writers ever run
// concurrently.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS parties (
		id          BIGSERIAL PRIMARY KEY,
		kind        TEXT NOT NULL,
		committee_id TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL DEFAULT '',
		city        TEXT NOT NULL DEFAULT '',
		state       TEXT NOT NULL DEFAULT '',
		zip         TEXT NOT NULL DEFAULT '',
		employer    TEXT NOT NULL DEFAULT '',
		occupation  TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS parties_committee_key
		ON parties (committee_id) WHERE kind = 'committee'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS parties_individual_key
		ON parties (name, city, state, zip) WHERE kind = 'individual'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS parties_other_key
		ON parties (name) WHERE kind = 'other'`,
	`CREATE TABLE IF NOT EXISTS contributions (
		id             BIGSERIAL PRIMARY KEY,
		recipient_id   BIGINT NOT NULL REFERENCES parties (id),
		contributor_id BIGINT REFERENCES parties (id),
		amount         DOUBLE PRECISION NOT NULL,
		date           DATE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id           BIGSERIAL PRIMARY KEY,
		payer_id     BIGINT NOT NULL REFERENCES parties (id),
		recipient_id BIGINT REFERENCES parties (id),
		amount       DOUBLE PRECISION NOT NULL,
		date         DATE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS summaries (
		id       BIGSERIAL PRIMARY KEY,
		filer_id TEXT NOT NULL,
		date     DATE NOT NULL,
		total_monetary_contributions   DOUBLE PRECISION,
		total_contributions_received   DOUBLE PRECISION,
		total_expenditures_made        DOUBLE PRECISION,
		ending_cash_balance            DOUBLE PRECISION,
		total_unitemized_contributions DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS summaries_filer_date_key
		ON summaries (filer_id, date)`,
	`CREATE TABLE IF NOT EXISTS ingest_runs (
		id          BIGSERIAL PRIMARY KEY,
		run_id      UUID NOT NULL,
		feed        TEXT NOT NULL,
		records     BIGINT NOT NULL,
		outcome     TEXT NOT NULL,
		started_at  TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema provisions the tables and unique indexes the loader writes to.
// Every statement is idempotent, so repeated runs are safe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
