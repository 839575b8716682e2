package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"opendisclosure/internal/party/models"
)

const partyColumns = `id, kind, committee_id, name, city, state, zip, employer, occupation`

// PostgresStore persists parties in PostgreSQL. Resolution is an explicit
// lookup followed by an insert; the partial unique indexes on each variant's
// lookup key turn a lost race into a unique violation we recover from by
// re-reading.
type PostgresStore struct {
	db DBTX
}

func NewPostgres(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindOrCreate(ctx context.Context, p *models.Party) (*models.Party, bool, error) {
	found, err := s.find(ctx, p.Key())
	if err == nil {
		return found, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	created, err := s.insert(ctx, p)
	if err != nil {
		if isUniqueViolation(err) {
			found, ferr := s.find(ctx, p.Key())
			if ferr != nil {
				return nil, false, fmt.Errorf("re-read party after conflict: %w", ferr)
			}
			return found, false, nil
		}
		return nil, false, err
	}
	return created, true, nil
}

func (s *PostgresStore) find(ctx context.Context, key models.LookupKey) (*models.Party, error) {
	var row *sql.Row
	switch key.Kind {
	case models.KindCommittee:
		row = s.db.QueryRowContext(ctx,
			`SELECT `+partyColumns+` FROM parties WHERE kind = $1 AND committee_id = $2`,
			key.Kind, key.CommitteeID)
	case models.KindIndividual:
		row = s.db.QueryRowContext(ctx,
			`SELECT `+partyColumns+` FROM parties WHERE kind = $1 AND name = $2 AND city = $3 AND state = $4 AND zip = $5`,
			key.Kind, key.Name, key.City, key.State, key.Zip)
	default:
		row = s.db.QueryRowContext(ctx,
			`SELECT `+partyColumns+` FROM parties WHERE kind = $1 AND name = $2`,
			key.Kind, key.Name)
	}

	var p models.Party
	err := row.Scan(&p.ID, &p.Kind, &p.CommitteeID, &p.Name, &p.City, &p.State, &p.Zip, &p.Employer, &p.Occupation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s party: %w", key.Kind, err)
	}
	return &p, nil
}

func (s *PostgresStore) insert(ctx context.Context, p *models.Party) (*models.Party, error) {
	created := *p
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO parties (kind, committee_id, name, city, state, zip, employer, occupation)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		p.Kind, p.CommitteeID, p.Name, p.City, p.State, p.Zip, p.Employer, p.Occupation,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("create %s party: %w", p.Kind, err)
	}
	return &created, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
