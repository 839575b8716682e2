package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for transaction linking. All methods are
// nil-safe so services built without metrics (unit tests) skip recording.
type Metrics struct {
	TransactionsLinked *prometheus.CounterVec
	UnknownEntityCodes prometheus.Counter
}

// New creates and registers all ledger metrics. Call once per process.
func New() *Metrics {
	return &Metrics{
		TransactionsLinked: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "opendisclosure_transactions_linked_total",
			Help: "Transaction rows created, by record class",
		}, []string{"record_class"}),
		UnknownEntityCodes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "opendisclosure_unknown_entity_codes_total",
			Help: "Records whose entity code matched no recognized counterparty class",
		}),
	}
}

// IncrementTransactionsLinked records a created transaction row.
func (m *Metrics) IncrementTransactionsLinked(recordClass string) {
	if m == nil {
		return
	}
	m.TransactionsLinked.WithLabelValues(recordClass).Inc()
}

// IncrementUnknownEntityCode records an unclassifiable counterparty.
func (m *Metrics) IncrementUnknownEntityCode() {
	if m == nil {
		return
	}
	m.UnknownEntityCodes.Inc()
}
