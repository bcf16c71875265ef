package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSolverMetrics() {
	r.SolvesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "longpath_solves_total",
			Help: "Total number of solves",
		},
		[]string{"strategy", "status"}, // status: ok, interrupted, failed
	)

	r.SolveDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "longpath_solve_duration_seconds",
			Help:    "Solve latency in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60, 300},
		},
		[]string{"strategy"},
	)

	r.SearchNodesExpanded = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "longpath_search_nodes_expanded",
			Help:    "Search tree nodes expanded per solve",
			Buckets: prometheus.ExponentialBuckets(10, 10, 9),
		},
		[]string{"strategy"},
	)

	r.BranchesPrunedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "longpath_branches_pruned_total",
			Help: "Total number of search branches cut by the upper bound",
		},
		[]string{"strategy"},
	)

	r.WorkerFailuresTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "longpath_worker_failures_total",
			Help: "Total number of parallel search workers that failed",
		},
		[]string{"strategy"},
	)

	r.LastPathDistance = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "longpath_last_path_distance",
			Help: "Total weight of the most recently reported path",
		},
	)

	r.LastPathLength = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "longpath_last_path_vertices",
			Help: "Vertex count of the most recently reported path",
		},
	)
}
