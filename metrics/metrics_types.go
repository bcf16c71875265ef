package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all solver metrics on a private Prometheus registry.
type Registry struct {
	// Solver Metrics
	SolvesTotal         *prometheus.CounterVec
	SolveDuration       *prometheus.HistogramVec
	SearchNodesExpanded *prometheus.HistogramVec
	BranchesPrunedTotal *prometheus.CounterVec
	WorkerFailuresTotal *prometheus.CounterVec

	// Graph Metrics
	GraphClassificationsTotal *prometheus.CounterVec
	GraphVertices             prometheus.Gauge
	GraphEdges                prometheus.Gauge

	// Result Metrics
	LastPathDistance prometheus.Gauge
	LastPathLength   prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// NewRegistry creates a registry with every metric initialized and the Go
// runtime collector attached.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	r := &Registry{
		registry: reg,
	}

	r.initSolverMetrics()
	r.initGraphMetrics()

	return r
}

// Gatherer returns the underlying Prometheus registry as a Gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
