package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/isaw/pkg/domain"
)

const namespace = "isaw"

// Metrics collects generation counters for one process.
type Metrics struct {
	registry   *prometheus.Registry
	candidates *prometheus.CounterVec
	rejected   *prometheus.CounterVec
	emitted    *prometheus.CounterVec
	capped     *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		candidates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "candidates_total",
				Help:      "Arrangements produced by the generator.",
			},
			[]string{"mode"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejected_total",
				Help:      "Arrangements dropped by a filter stage.",
			},
			[]string{"mode", "stage"},
		),
		emitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "emitted_total",
				Help:      "Arrangements that survived every filter.",
			},
			[]string{"mode"},
		),
		capped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cap_reached_total",
				Help:      "Enumerations stopped by the result cap.",
			},
			[]string{"mode"},
		),
	}

	m.registry.MustRegister(m.candidates, m.rejected, m.emitted, m.capped)
	return m
}

// Hooks returns engine hooks that update the counters.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnCandidate: func(mode domain.Mode, _ string) {
			m.candidates.WithLabelValues(string(mode)).Inc()
		},
		OnReject: func(mode domain.Mode, stage domain.Stage, _ string) {
			m.rejected.WithLabelValues(string(mode), string(stage)).Inc()
		},
		OnEmit: func(mode domain.Mode, _ string) {
			m.emitted.WithLabelValues(string(mode)).Inc()
		},
		OnCapReached: func(mode domain.Mode, _ int) {
			m.capped.WithLabelValues(string(mode)).Inc()
		},
	}
}

// Registry exposes the underlying registry, e.g. for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current values in the Prometheus text format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
