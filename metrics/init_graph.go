package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphClassificationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "longpath_graph_classifications_total",
			Help: "Total number of input graphs by structural class",
		},
		[]string{"class"}, // empty, complete, sparse, general
	)

	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "longpath_graph_vertices",
			Help: "Vertex count of the most recently loaded graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "longpath_graph_edges",
			Help: "Edge count of the most recently loaded graph",
		},
	)
}
