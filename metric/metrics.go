// Package metric provides Prometheus metrics for the entity construction
// layer: registry size, schema store growth, validation outcomes, and
// spawn counts.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all platform-level metrics for the construction layer
type Metrics struct {
	// Registry metrics
	ComponentTypes prometheus.Gauge

	// Schema store metrics
	ComponentSchemas  prometheus.Gauge
	SchemaEntries     *prometheus.CounterVec
	DiscoveredEntries *prometheus.CounterVec

	// Validation/mapping metrics
	Validations *prometheus.CounterVec

	// Spawn metrics
	SpawnedEntities   prometheus.Counter
	SpawnedComponents *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all platform metrics
func NewMetrics() *Metrics {
	return &Metrics{
		ComponentTypes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "olympe",
				Subsystem: "registry",
				Name:      "component_types",
				Help:      "Number of registered component types",
			},
		),

		ComponentSchemas: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "olympe",
				Subsystem: "schema",
				Name:      "component_schemas",
				Help:      "Number of distinct component schemas",
			},
		),

		SchemaEntries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "olympe",
				Subsystem: "schema",
				Name:      "entries_total",
				Help:      "Total number of parameter schema entries registered",
			},
			[]string{"component"},
		),

		DiscoveredEntries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "olympe",
				Subsystem: "schema",
				Name:      "discovered_entries_total",
				Help:      "Total number of schema entries synthesized by discovery",
			},
			[]string{"component", "source"},
		),

		Validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "olympe",
				Subsystem: "validation",
				Name:      "total",
				Help:      "Total number of component parameter validations",
			},
			[]string{"component", "status"},
		),

		SpawnedEntities: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "olympe",
				Subsystem: "spawn",
				Name:      "entities_total",
				Help:      "Total number of entities spawned from blueprints",
			},
		),

		SpawnedComponents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "olympe",
				Subsystem: "spawn",
				Name:      "components_total",
				Help:      "Total number of component instances constructed",
			},
			[]string{"component", "status"},
		),
	}
}

// Register registers all metrics with the given registerer
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.ComponentTypes,
		m.ComponentSchemas,
		m.SchemaEntries,
		m.DiscoveredEntries,
		m.Validations,
		m.SpawnedEntities,
		m.SpawnedComponents,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
