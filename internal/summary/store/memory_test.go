package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendisclosure/internal/summary/models"
)

func TestMemoryStoreSetField(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2014, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("creates the row lazily", func(t *testing.T) {
		s := NewMemory()
		_, ok := s.Find("1229791", date)
		assert.False(t, ok)

		require.NoError(t, s.SetField(ctx, "1229791", date, models.FieldEndingCashBalance, 820.25))

		row, ok := s.Find("1229791", date)
		require.True(t, ok)
		require.NotNil(t, row.EndingCashBalance)
		assert.Equal(t, 820.25, *row.EndingCashBalance)
	})

	t.Run("mutates the existing row in place", func(t *testing.T) {
		s := NewMemory()
		require.NoError(t, s.SetField(ctx, "1229791", date, models.FieldTotalMonetaryContributions, 1000))
		require.NoError(t, s.SetField(ctx, "1229791", date, models.FieldTotalExpendituresMade, 400))
		require.NoError(t, s.SetField(ctx, "1229791", date, models.FieldTotalMonetaryContributions, 1500))

		assert.Equal(t, 1, s.Len())
		row, ok := s.Find("1229791", date)
		require.True(t, ok)
		assert.Equal(t, 1500.0, *row.TotalMonetaryContributions)
		assert.Equal(t, 400.0, *row.TotalExpendituresMade)
	})

	t.Run("distinct dates get distinct rows", func(t *testing.T) {
		s := NewMemory()
		later := date.AddDate(0, 6, 0)
		require.NoError(t, s.SetField(ctx, "1229791", date, models.FieldEndingCashBalance, 1))
		require.NoError(t, s.SetField(ctx, "1229791", later, models.FieldEndingCashBalance, 2))
		assert.Equal(t, 2, s.Len())
	})
}
