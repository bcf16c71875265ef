// Package metrics exposes solver telemetry as Prometheus metrics.
//
// Registry implements longestpath.Recorder, so a solve reports into it with
// longestpath.WithRecorder(reg). Batch runs persist a snapshot with
// WriteTextfile for the node_exporter textfile collector.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrNoPath is returned by WriteTextfile when no file name is given.
var ErrNoPath = errors.New("metrics: textfile path is empty")

// RecordSolve records one finished solve.
func (r *Registry) RecordSolve(strategy, status string, elapsed time.Duration, expanded, pruned int64) {
	r.SolvesTotal.WithLabelValues(strategy, status).Inc()
	r.SolveDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
	r.SearchNodesExpanded.WithLabelValues(strategy).Observe(float64(expanded))
	if pruned > 0 {
		r.BranchesPrunedTotal.WithLabelValues(strategy).Add(float64(pruned))
	}
}

// RecordWorkerFailure records one failed parallel worker.
func (r *Registry) RecordWorkerFailure(strategy string) {
	r.WorkerFailuresTotal.WithLabelValues(strategy).Inc()
}

// RecordClassification records the class of an input graph.
func (r *Registry) RecordClassification(class string) {
	r.GraphClassificationsTotal.WithLabelValues(class).Inc()
}

// UpdateGraphMetrics sets the size gauges of the loaded graph.
func (r *Registry) UpdateGraphMetrics(vertices, edges int) {
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
}

// RecordResult sets the gauges describing the reported path.
func (r *Registry) RecordResult(distance float64, vertices int) {
	r.LastPathDistance.Set(distance)
	r.LastPathLength.Set(float64(vertices))
}

// WriteTextfile writes every registered metric to filename in the Prometheus
// text format. The file is replaced atomically.
func (r *Registry) WriteTextfile(filename string) error {
	if filename == "" {
		return ErrNoPath
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return prometheus.WriteToTextfile(filename, r.registry)
}
