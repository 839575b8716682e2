//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"opendisclosure/internal/party/models"
	"opendisclosure/internal/party/store"
	"opendisclosure/internal/platform/postgres"
	"opendisclosure/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(postgres.EnsureSchema(context.Background(), s.postgres.DB))
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "contributions", "payments", "parties")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestCommitteeResolutionIsIdempotent() {
	ctx := context.Background()

	first, created, err := s.store.FindOrCreate(ctx, &models.Party{
		Kind: models.KindCommittee, CommitteeID: "1229791", Name: "Committee A",
	})
	s.Require().NoError(err)
	s.True(created)

	second, created, err := s.store.FindOrCreate(ctx, &models.Party{
		Kind: models.KindCommittee, CommitteeID: "1229791", Name: "Committee A renamed",
	})
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.ID, second.ID)
	s.Equal("Committee A", second.Name, "name captured at first creation is retained")

	var count int
	err = s.postgres.DB.QueryRowContext(ctx, `SELECT count(*) FROM parties`).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *PostgresStoreSuite) TestIndividualLookupKeySufficiency() {
	ctx := context.Background()

	first, _, err := s.store.FindOrCreate(ctx, &models.Party{
		Kind: models.KindIndividual,
		Name: "Jane Doe", City: "Oakland", State: "CA", Zip: "94612",
		Employer: "Acme", Occupation: "Engineer",
	})
	s.Require().NoError(err)

	second, created, err := s.store.FindOrCreate(ctx, &models.Party{
		Kind: models.KindIndividual,
		Name: "Jane Doe", City: "Oakland", State: "CA", Zip: "94612",
		Employer: "Globex", Occupation: "Manager",
	})
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.ID, second.ID)
	s.Equal("Acme", second.Employer)
}

func (s *PostgresStoreSuite) TestOtherPartyKeyNarrowing() {
	ctx := context.Background()

	first, _, err := s.store.FindOrCreate(ctx, &models.Party{
		Kind: models.KindOther, Name: "Acme LLC", City: "Oakland", State: "CA", Zip: "94612",
	})
	s.Require().NoError(err)

	second, created, err := s.store.FindOrCreate(ctx, &models.Party{
		Kind: models.KindOther, Name: "Acme LLC", City: "San Jose", State: "CA", Zip: "95113",
	})
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.ID, second.ID)
}

func (s *PostgresStoreSuite) TestKindsDoNotCollide() {
	ctx := context.Background()

	ind, _, err := s.store.FindOrCreate(ctx, &models.Party{
		Kind: models.KindIndividual, Name: "Acme LLC", City: "Oakland", State: "CA", Zip: "94612",
	})
	s.Require().NoError(err)

	oth, created, err := s.store.FindOrCreate(ctx, &models.Party{
		Kind: models.KindOther, Name: "Acme LLC",
	})
	s.Require().NoError(err)
	s.True(created)
	s.NotEqual(ind.ID, oth.ID)
}
