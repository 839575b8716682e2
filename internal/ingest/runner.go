package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	ingestmetrics "opendisclosure/internal/ingest/metrics"
	"opendisclosure/internal/socrata"
)

// Source is the feed adapter contract: a lazy, finite, non-restartable
// sequence of raw records consumed by sequential iteration.
type Source interface {
	Each(ctx context.Context, fn func(socrata.Record) error) error
}

// RecordHandler consumes one raw record of a batch.
type RecordHandler func(ctx context.Context, rec socrata.Record) error

// Batch binds one feed to the handler processing its record class. The
// handler is built per run from the batch-scoped stores, so Postgres batches
// write through the same transaction.
type Batch struct {
	Feed    string
	Source  Source
	Handler func(s Stores) RecordHandler
}

// BatchError reports which feed's batch failed.
type BatchError struct {
	Feed string
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s batch: %v", e.Feed, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// Runner drives the feed batches one at a time, in order. Each batch is an
// independent unit of work: a failed batch is discarded and reported, and
// later batches still run.
type Runner struct {
	uow     UnitOfWork
	runs    RunStore
	log     zerolog.Logger
	metrics *ingestmetrics.Metrics
}

func NewRunner(uow UnitOfWork, runs RunStore, log zerolog.Logger, metrics *ingestmetrics.Metrics) *Runner {
	return &Runner{uow: uow, runs: runs, log: log, metrics: metrics}
}

// Run processes the batches sequentially. The returned error joins one
// BatchError per failed feed; nil means every batch committed.
func (r *Runner) Run(ctx context.Context, batches []Batch) error {
	var errs []error
	for _, b := range batches {
		if err := r.runBatch(ctx, b); err != nil {
			r.metrics.IncrementBatchFailures(b.Feed)
			r.log.Error().Err(err).Str("feed", b.Feed).Msg("batch failed, effects discarded")
			errs = append(errs, &BatchError{Feed: b.Feed, Err: err})
		}
	}
	return errors.Join(errs...)
}

func (r *Runner) runBatch(ctx context.Context, b Batch) error {
	start := time.Now()
	runID := uuid.New()
	log := r.log.With().Str("feed", b.Feed).Stringer("run_id", runID).Logger()
	log.Info().Msg("starting batch")

	var processed int64
	err := r.uow.Run(ctx, func(ctx context.Context, s Stores) error {
		handle := b.Handler(s)
		return b.Source.Each(ctx, func(rec socrata.Record) error {
			if err := handle(ctx, rec); err != nil {
				return err
			}
			processed++
			return nil
		})
	})

	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeFailed
	}
	run := RunRecord{
		RunID:      runID,
		Feed:       b.Feed,
		Records:    processed,
		Outcome:    outcome,
		StartedAt:  start,
		FinishedAt: time.Now(),
	}
	if rerr := r.runs.Record(ctx, run); rerr != nil {
		log.Warn().Err(rerr).Msg("recording run outcome failed")
	}

	if err != nil {
		return err
	}
	r.metrics.AddRecordsProcessed(b.Feed, processed)
	r.metrics.ObserveBatch(b.Feed, start)
	log.Info().Int64("records", processed).Dur("elapsed", time.Since(start)).Msg("batch committed")
	return nil
}
