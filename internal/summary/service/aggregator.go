package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"opendisclosure/internal/socrata"
	summarymetrics "opendisclosure/internal/summary/metrics"
	"opendisclosure/internal/summary/models"
	"opendisclosure/internal/summary/store"
)

// pendingFilerID is the placeholder Socrata serves while a filing's filer
// assignment is unresolved.
const pendingFilerID = "Pending"

// Aggregator folds summary-line records into per-filer-per-date roll-up
// rows. Records failing the filter chain are dropped without touching
// storage; passing records overwrite the mapped field (last write wins).
type Aggregator struct {
	summaries store.Store
	log       zerolog.Logger
	metrics   *summarymetrics.Metrics
}

func NewAggregator(summaries store.Store, log zerolog.Logger, metrics *summarymetrics.Metrics) *Aggregator {
	return &Aggregator{summaries: summaries, log: log, metrics: metrics}
}

// Aggregate handles one summary-line record.
func (a *Aggregator) Aggregate(ctx context.Context, rec socrata.Record) error {
	lines, ok := models.SummaryLines[rec.Get("form_type")]
	if !ok {
		a.metrics.IncrementSkipped("form_type")
		return nil
	}
	field, ok := lines[rec.Get("line_item")]
	if !ok {
		a.metrics.IncrementSkipped("line_item")
		return nil
	}

	filerID := rec.Get("filer_id")
	if filerID == pendingFilerID {
		a.metrics.IncrementSkipped("filer_pending")
		return nil
	}
	if id, err := strconv.Atoi(filerID); err != nil || id <= 0 {
		a.metrics.IncrementSkipped("filer_id")
		return nil
	}

	date := rec.Date("rpt_date")
	if date == nil {
		a.metrics.IncrementSkipped("rpt_date")
		a.log.Warn().
			Str("filer_id", filerID).
			Str("rpt_date", rec.Get("rpt_date")).
			Msg("summary line with unparseable report date")
		return nil
	}

	amount := rec.Float("amount_a")
	if err := a.summaries.SetField(ctx, filerID, *date, field, amount); err != nil {
		return fmt.Errorf("aggregate summary line: %w", err)
	}
	a.metrics.IncrementApplied(string(field))
	a.log.Debug().
		Str("filer_id", filerID).
		Str("field", string(field)).
		Float64("amount", amount).
		Msg("applied summary line")
	return nil
}
