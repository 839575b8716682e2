package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for batch runs. All methods are nil-safe
// so runners built without metrics (unit tests) skip recording.
type Metrics struct {
	RecordsProcessed *prometheus.CounterVec
	BatchFailures    *prometheus.CounterVec
	BatchDuration    *prometheus.HistogramVec
}

// New creates and registers all ingest metrics. Call once per process.
func New() *Metrics {
	return &Metrics{
		RecordsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "opendisclosure_records_processed_total",
			Help: "Feed records handled in committed batches, by feed",
		}, []string{"feed"}),
		BatchFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "opendisclosure_batch_failures_total",
			Help: "Feed batches aborted and rolled back, by feed",
		}, []string{"feed"}),
		BatchDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "opendisclosure_batch_duration_seconds",
			Help:    "Wall-clock duration of feed batches",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
		}, []string{"feed"}),
	}
}

// AddRecordsProcessed records the size of a committed batch.
func (m *Metrics) AddRecordsProcessed(feed string, count int64) {
	if m == nil {
		return
	}
	m.RecordsProcessed.WithLabelValues(feed).Add(float64(count))
}

// IncrementBatchFailures records an aborted batch.
func (m *Metrics) IncrementBatchFailures(feed string) {
	if m == nil {
		return
	}
	m.BatchFailures.WithLabelValues(feed).Inc()
}

// ObserveBatch records a batch duration. Call with time.Now() from the
// start of the batch.
func (m *Metrics) ObserveBatch(feed string, start time.Time) {
	if m == nil {
		return
	}
	m.BatchDuration.WithLabelValues(feed).Observe(time.Since(start).Seconds())
}
