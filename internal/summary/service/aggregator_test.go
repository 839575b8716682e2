package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendisclosure/internal/socrata"
	"opendisclosure/internal/summary/models"
	"opendisclosure/internal/summary/store"
)

func newTestAggregator() (*Aggregator, *store.MemoryStore) {
	summaries := store.NewMemory()
	return NewAggregator(summaries, zerolog.Nop(), nil), summaries
}

func summaryLine(overrides map[string]string) socrata.Record {
	rec := socrata.Record{
		"form_type": "F460",
		"line_item": "1",
		"filer_id":  "1229791",
		"rpt_date":  "2014-06-30T00:00:00",
		"amount_a":  "1500",
	}
	for k, v := range overrides {
		rec[k] = v
	}
	return rec
}

func TestAggregateMergesDisjointFields(t *testing.T) {
	ctx := context.Background()
	a, summaries := newTestAggregator()

	require.NoError(t, a.Aggregate(ctx, summaryLine(map[string]string{"line_item": "1", "amount_a": "1500"})))
	require.NoError(t, a.Aggregate(ctx, summaryLine(map[string]string{"line_item": "16", "amount_a": "820.25"})))

	date := time.Date(2014, 6, 30, 0, 0, 0, 0, time.UTC)
	row, ok := summaries.Find("1229791", date)
	require.True(t, ok)
	assert.Equal(t, 1, summaries.Len(), "both lines land on the same roll-up row")

	require.NotNil(t, row.TotalMonetaryContributions)
	assert.Equal(t, 1500.0, *row.TotalMonetaryContributions)
	require.NotNil(t, row.EndingCashBalance)
	assert.Equal(t, 820.25, *row.EndingCashBalance)
	assert.Nil(t, row.TotalExpendituresMade)
}

func TestAggregateLastWriteWins(t *testing.T) {
	ctx := context.Background()
	a, summaries := newTestAggregator()

	require.NoError(t, a.Aggregate(ctx, summaryLine(map[string]string{"amount_a": "1000"})))
	require.NoError(t, a.Aggregate(ctx, summaryLine(map[string]string{"amount_a": "2500"})))

	row, ok := summaries.Find("1229791", time.Date(2014, 6, 30, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	require.NotNil(t, row.TotalMonetaryContributions)
	assert.Equal(t, 2500.0, *row.TotalMonetaryContributions, "the later record overwrites, values never sum")
}

func TestAggregateFormAMapsUnitemized(t *testing.T) {
	ctx := context.Background()
	a, summaries := newTestAggregator()

	require.NoError(t, a.Aggregate(ctx, summaryLine(map[string]string{
		"form_type": "A", "line_item": "2", "amount_a": "314.15",
	})))

	row, ok := summaries.Find("1229791", time.Date(2014, 6, 30, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	require.NotNil(t, row.TotalUnitemizedContributions)
	assert.Equal(t, 314.15, *row.TotalUnitemizedContributions)
}

func TestAggregateFilterChain(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name      string
		overrides map[string]string
	}{
		{"unrecognized form type", map[string]string{"form_type": "F497"}},
		{"unrecognized line item", map[string]string{"line_item": "99"}},
		{"line item from the wrong form", map[string]string{"form_type": "A", "line_item": "16"}},
		{"pending filer", map[string]string{"filer_id": "Pending"}},
		{"zero filer id", map[string]string{"filer_id": "0"}},
		{"negative filer id", map[string]string{"filer_id": "-3"}},
		{"non-numeric filer id", map[string]string{"filer_id": "abc"}},
		{"unparseable report date", map[string]string{"rpt_date": "last tuesday"}},
		{"missing report date", map[string]string{"rpt_date": ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, summaries := newTestAggregator()
			require.NoError(t, a.Aggregate(ctx, summaryLine(tc.overrides)))
			assert.Equal(t, 0, summaries.Len(), "filtered records must not touch storage")
		})
	}
}

func TestAggregateDiscardsTimeOfDay(t *testing.T) {
	ctx := context.Background()
	a, summaries := newTestAggregator()

	require.NoError(t, a.Aggregate(ctx, summaryLine(map[string]string{
		"rpt_date": "2014-06-30T13:45:12", "line_item": "5",
	})))
	require.NoError(t, a.Aggregate(ctx, summaryLine(map[string]string{
		"rpt_date": "2014-06-30T00:00:00", "line_item": "11",
	})))

	assert.Equal(t, 1, summaries.Len(), "same calendar date resolves to the same row")
	row, ok := summaries.Find("1229791", time.Date(2014, 6, 30, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.NotNil(t, row.TotalContributionsReceived)
	assert.NotNil(t, row.TotalExpendituresMade)
}

func TestSummaryLinesMappingIsClosed(t *testing.T) {
	// Every mapped field must be one of the known columns; the Postgres
	// store interpolates these names into SQL.
	known := map[models.Field]bool{
		models.FieldTotalMonetaryContributions:   true,
		models.FieldTotalContributionsReceived:   true,
		models.FieldTotalExpendituresMade:        true,
		models.FieldEndingCashBalance:            true,
		models.FieldTotalUnitemizedContributions: true,
	}
	for form, lines := range models.SummaryLines {
		for line, field := range lines {
			assert.True(t, known[field], "form %s line %s maps to unknown field %q", form, line, field)
		}
	}
}
