package playground

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the playground's Prometheus instruments.
type metrics struct {
	queries       *prometheus.CounterVec
	queryDuration prometheus.Histogram
	queryMatches  prometheus.Histogram
	reloads       prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &metrics{
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shorthand",
			Subsystem: "playground",
			Name:      "queries_total",
			Help:      "Selector queries served, by outcome.",
		}, []string{"outcome"}),
		queryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shorthand",
			Subsystem: "playground",
			Name:      "query_duration_seconds",
			Help:      "Time spent resolving selector queries.",
			Buckets:   prometheus.DefBuckets,
		}),
		queryMatches: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shorthand",
			Subsystem: "playground",
			Name:      "query_matches",
			Help:      "Nodes matched per selector query.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		reloads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "shorthand",
			Subsystem: "playground",
			Name:      "document_reloads_total",
			Help:      "Times the source document was re-parsed.",
		}),
	}
}
