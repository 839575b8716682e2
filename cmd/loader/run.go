package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"opendisclosure/internal/ingest"
	ingestmetrics "opendisclosure/internal/ingest/metrics"
	ledgermetrics "opendisclosure/internal/ledger/metrics"
	partymetrics "opendisclosure/internal/party/metrics"
	"opendisclosure/internal/platform/config"
	"opendisclosure/internal/platform/httpserver"
	"opendisclosure/internal/platform/logger"
	"opendisclosure/internal/platform/postgres"
	summarymetrics "opendisclosure/internal/summary/metrics"
)

var feedFilter []string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Ingest the disclosure feeds",
	RunE:  runLoader,
}

func init() {
	runCmd.Flags().StringSliceVar(&feedFilter, "feed", nil,
		"restrict the run to the named feeds (schedule_a, schedule_e, summary)")
}

func runLoader(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if verbose {
		level = zerolog.DebugLevel
	}
	log := logger.New(level)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		srv := httpserver.New(cfg.MetricsAddr, httpserver.MetricsRouter())
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("metrics listener error")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics listener started")
	}

	batches := ingest.NewBatches(cfg.FeedURLs, cfg.PageSize, log, ingest.FeatureMetrics{
		Party:   partymetrics.New(),
		Ledger:  ledgermetrics.New(),
		Summary: summarymetrics.New(),
	})
	batches, err = selectBatches(batches, feedFilter)
	if err != nil {
		return err
	}

	runner := ingest.NewRunner(
		ingest.NewPostgresUnitOfWork(db),
		ingest.NewPostgresRunStore(db),
		log,
		ingestmetrics.New(),
	)
	return runner.Run(ctx, batches)
}

func selectBatches(batches []ingest.Batch, names []string) ([]ingest.Batch, error) {
	if len(names) == 0 {
		return batches, nil
	}
	byName := make(map[string]ingest.Batch, len(batches))
	for _, b := range batches {
		byName[b.Feed] = b
	}
	selected := make([]ingest.Batch, 0, len(names))
	for _, name := range names {
		b, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown feed %q", name)
		}
		selected = append(selected, b)
	}
	return selected, nil
}
