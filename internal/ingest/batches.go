package ingest

import (
	"context"

	"github.com/rs/zerolog"

	ledgermetrics "opendisclosure/internal/ledger/metrics"
	ledgerservice "opendisclosure/internal/ledger/service"
	partymetrics "opendisclosure/internal/party/metrics"
	partyservice "opendisclosure/internal/party/service"
	"opendisclosure/internal/platform/config"
	"opendisclosure/internal/socrata"
	summarymetrics "opendisclosure/internal/summary/metrics"
	summaryservice "opendisclosure/internal/summary/service"
)

// FeatureMetrics bundles the per-feature metric sets the batch handlers
// record to. Any field may be nil.
type FeatureMetrics struct {
	Party   *partymetrics.Metrics
	Ledger  *ledgermetrics.Metrics
	Summary *summarymetrics.Metrics
}

// NewBatches wires the three record classes to their linker/aggregator.
// Handlers build their services per batch so Postgres runs write through the
// batch transaction.
func NewBatches(feedURLs map[string]string, pageSize int, log zerolog.Logger, m FeatureMetrics) []Batch {
	fetcher := func(feed string) Source {
		return socrata.NewFetcher(feedURLs[feed],
			socrata.WithPageSize(pageSize),
			socrata.WithLogger(log))
	}
	linker := func(s Stores) *ledgerservice.Linker {
		resolver := partyservice.NewResolver(s.Parties, log, m.Party)
		return ledgerservice.NewLinker(resolver, s.Contributions, s.Payments, log, m.Ledger)
	}

	return []Batch{
		{
			Feed:   config.FeedContributions,
			Source: fetcher(config.FeedContributions),
			Handler: func(s Stores) RecordHandler {
				l := linker(s)
				return func(ctx context.Context, rec socrata.Record) error {
					_, err := l.LinkContribution(ctx, rec)
					return err
				}
			},
		},
		{
			Feed:   config.FeedPayments,
			Source: fetcher(config.FeedPayments),
			Handler: func(s Stores) RecordHandler {
				l := linker(s)
				return func(ctx context.Context, rec socrata.Record) error {
					_, err := l.LinkPayment(ctx, rec)
					return err
				}
			},
		},
		{
			Feed:   config.FeedSummary,
			Source: fetcher(config.FeedSummary),
			Handler: func(s Stores) RecordHandler {
				a := summaryservice.NewAggregator(s.Summaries, log, m.Summary)
				return a.Aggregate
			},
		},
	}
}
