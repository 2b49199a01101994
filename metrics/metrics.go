// Package metrics holds the Prometheus collectors updated while graphs are
// processed. Collectors are registered on a caller-supplied registry so that
// tests and repeated runs never collide on the global one.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salesman"

// Outcome label values for GraphsTotal.
const (
	OutcomeCircuit   = "circuit"
	OutcomeNoCircuit = "no_circuit"
	OutcomeError     = "error"
)

// Metrics groups the collectors of one run.
type Metrics struct {
	// GraphsTotal counts processed graphs by outcome.
	GraphsTotal *prometheus.CounterVec

	// TrialsTotal counts (start, second) trials evaluated.
	TrialsTotal prometheus.Counter

	// EdgeWarningsTotal counts edges rejected for out-of-range endpoints.
	EdgeWarningsTotal prometheus.Counter

	// CacheHitsTotal counts graphs answered from the result cache.
	CacheHitsTotal prometheus.Counter

	// SearchDuration measures FindBestCircuit wall time.
	// Buckets span sub-millisecond toy graphs to multi-second large ones.
	SearchDuration prometheus.Histogram
}

// New creates the collectors and registers them on reg.
// A nil reg creates unregistered collectors.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	m := &Metrics{
		GraphsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graphs_total",
				Help:      "Total number of graphs processed, by outcome",
			},
			[]string{"outcome"},
		),
		TrialsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Total number of nearest-neighbour trials evaluated",
		}),
		EdgeWarningsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edge_warnings_total",
			Help:      "Total number of edges rejected for out-of-range endpoints",
		}),
		CacheHitsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of graphs answered from the result cache",
		}),
		SearchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Duration of the circuit search in seconds",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}),
	}

	// Expose every outcome from the start, zero or not.
	m.GraphsTotal.WithLabelValues(OutcomeCircuit)
	m.GraphsTotal.WithLabelValues(OutcomeNoCircuit)
	m.GraphsTotal.WithLabelValues(OutcomeError)

	return m
}

// WriteFile writes every metric gathered by g to path in the Prometheus text
// format, for pickup by a node exporter textfile collector.
func WriteFile(g prometheus.Gatherer, path string) error {
	return prometheus.WriteToTextfile(path, g)
}
