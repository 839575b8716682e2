package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for summary aggregation. All methods are
// nil-safe so services built without metrics (unit tests) skip recording.
type Metrics struct {
	LinesApplied *prometheus.CounterVec
	LinesSkipped *prometheus.CounterVec
}

// New creates and registers all summary metrics. Call once per process.
func New() *Metrics {
	return &Metrics{
		LinesApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "opendisclosure_summary_lines_applied_total",
			Help: "Summary lines folded into a roll-up row, by target field",
		}, []string{"field"}),
		LinesSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "opendisclosure_summary_lines_skipped_total",
			Help: "Summary lines dropped by the filter chain, by reason",
		}, []string{"reason"}),
	}
}

// IncrementApplied records a summary line folded into its row.
func (m *Metrics) IncrementApplied(field string) {
	if m == nil {
		return
	}
	m.LinesApplied.WithLabelValues(field).Inc()
}

// IncrementSkipped records a summary line dropped by the filter chain.
func (m *Metrics) IncrementSkipped(reason string) {
	if m == nil {
		return
	}
	m.LinesSkipped.WithLabelValues(reason).Inc()
}
