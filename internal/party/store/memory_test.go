package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendisclosure/internal/party/models"
)

func TestMemoryStoreFindOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("resolution is idempotent", func(t *testing.T) {
		s := NewMemory()

		first, created, err := s.FindOrCreate(ctx, &models.Party{Kind: models.KindCommittee, CommitteeID: "1229791", Name: "Committee A"})
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := s.FindOrCreate(ctx, &models.Party{Kind: models.KindCommittee, CommitteeID: "1229791", Name: "Committee A"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("creation fields are ignored on a hit", func(t *testing.T) {
		s := NewMemory()

		first, _, err := s.FindOrCreate(ctx, &models.Party{
			Kind: models.KindIndividual,
			Name: "Jane Doe", City: "Oakland", State: "CA", Zip: "94612",
			Employer: "Acme", Occupation: "Engineer",
		})
		require.NoError(t, err)

		second, created, err := s.FindOrCreate(ctx, &models.Party{
			Kind: models.KindIndividual,
			Name: "Jane Doe", City: "Oakland", State: "CA", Zip: "94612",
			Employer: "Globex", Occupation: "Manager",
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Acme", second.Employer, "employer captured at first creation is retained")
		assert.Equal(t, "Engineer", second.Occupation)
	})

	t.Run("other parties dedupe on name alone", func(t *testing.T) {
		s := NewMemory()

		first, _, err := s.FindOrCreate(ctx, &models.Party{Kind: models.KindOther, Name: "Acme LLC", City: "Oakland", State: "CA", Zip: "94612"})
		require.NoError(t, err)

		second, created, err := s.FindOrCreate(ctx, &models.Party{Kind: models.KindOther, Name: "Acme LLC", City: "San Jose", State: "CA", Zip: "95113"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Oakland", second.City, "address captured at first creation is retained")
	})

	t.Run("different keys create distinct rows", func(t *testing.T) {
		s := NewMemory()

		_, created, err := s.FindOrCreate(ctx, &models.Party{Kind: models.KindCommittee, CommitteeID: "1"})
		require.NoError(t, err)
		assert.True(t, created)

		_, created, err = s.FindOrCreate(ctx, &models.Party{Kind: models.KindCommittee, CommitteeID: "2"})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("blank keys still resolve to one row", func(t *testing.T) {
		s := NewMemory()

		first, created, err := s.FindOrCreate(ctx, &models.Party{Kind: models.KindCommittee})
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := s.FindOrCreate(ctx, &models.Party{Kind: models.KindCommittee, Name: "Late name"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})
}
