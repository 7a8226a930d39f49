package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// QueriesTotal counts processed queries by resolved intent.
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faunadex",
			Name:      "queries_total",
			Help:      "Total number of processed queries by intent",
		},
		[]string{"intent"},
	)

	// DegradedQueriesTotal counts queries answered with an empty set because
	// the catalog backend failed.
	DegradedQueriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "faunadex",
			Name:      "degraded_queries_total",
			Help:      "Total number of queries degraded to an empty answer by a backend failure",
		},
	)
)

// RegisterQueryMetrics registers the query-domain collectors (no init()).
func RegisterQueryMetrics() {
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(DegradedQueriesTotal)
}
