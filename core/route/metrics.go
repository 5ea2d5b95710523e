package route

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// tableMetrics holds the Prometheus collectors for a table.
type tableMetrics struct {
	matches   *prometheus.CounterVec
	unmatched *prometheus.CounterVec
}

// WithMetrics registers match counters against the given registerer and
// enables per-resolve instrumentation. Pattern display strings are used as
// labels, so cardinality is bounded by the size of the route table.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(t *Table) {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		factory := promauto.With(reg)
		t.metrics = &tableMetrics{
			matches: factory.NewCounterVec(prometheus.CounterOpts{
				Namespace: "junction",
				Name:      "route_matches_total",
				Help:      "Requests resolved to a route, by method and pattern.",
			}, []string{"method", "pattern"}),
			unmatched: factory.NewCounterVec(prometheus.CounterOpts{
				Namespace: "junction",
				Name:      "route_unmatched_total",
				Help:      "Requests that matched no route, by method.",
			}, []string{"method"}),
		}
	}
}
