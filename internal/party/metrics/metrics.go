package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for party resolution. All methods are
// nil-safe so services built without metrics (unit tests) skip recording.
type Metrics struct {
	PartiesCreated   *prometheus.CounterVec
	MalformedRecords prometheus.Counter
}

// New creates and registers all party metrics. Call once per process.
func New() *Metrics {
	return &Metrics{
		PartiesCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "opendisclosure_parties_created_total",
			Help: "Total number of party rows created, by variant",
		}, []string{"kind"}),
		MalformedRecords: promauto.NewCounter(prometheus.CounterOpts{
			Name: "opendisclosure_malformed_party_records_total",
			Help: "Records resolved with an entirely blank lookup key",
		}),
	}
}

// IncrementPartiesCreated records a newly created party row.
func (m *Metrics) IncrementPartiesCreated(kind string) {
	if m == nil {
		return
	}
	m.PartiesCreated.WithLabelValues(kind).Inc()
}

// IncrementMalformed records a resolution performed with a blank lookup key.
func (m *Metrics) IncrementMalformed() {
	if m == nil {
		return
	}
	m.MalformedRecords.Inc()
}
