package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/longestpath"
)

// Compile-time check that Registry can be handed to the solver.
var _ longestpath.Recorder = (*Registry)(nil)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.NotNil(t, r.SolvesTotal)
	assert.NotNil(t, r.SolveDuration)
	assert.NotNil(t, r.GraphClassificationsTotal)
	assert.NotNil(t, r.registry)
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestRecordSolve(t *testing.T) {
	r := NewRegistry()
	r.RecordSolve("exhaustive", "ok", 10*time.Millisecond, 100, 0)
	r.RecordSolve("exhaustive", "ok", 20*time.Millisecond, 50, 0)
	r.RecordSolve("parallel", "interrupted", time.Second, 1000, 42)

	var metric dto.Metric
	counter, err := r.SolvesTotal.GetMetricWithLabelValues("exhaustive", "ok")
	require.NoError(t, err)
	require.NoError(t, counter.Write(&metric))
	assert.Equal(t, 2.0, metric.Counter.GetValue())

	pruned, err := r.BranchesPrunedTotal.GetMetricWithLabelValues("parallel")
	require.NoError(t, err)
	require.NoError(t, pruned.Write(&metric))
	assert.Equal(t, 42.0, metric.Counter.GetValue())

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "longpath_solve_duration_seconds" {
			continue
		}
		var total uint64
		for _, m := range mf.GetMetric() {
			total += m.GetHistogram().GetSampleCount()
		}
		assert.Equal(t, uint64(3), total)
	}
}

func TestRecordWorkerFailureAndClassification(t *testing.T) {
	r := NewRegistry()
	r.RecordWorkerFailure("parallel")
	r.RecordClassification("sparse")
	r.RecordClassification("sparse")

	var metric dto.Metric
	c, err := r.WorkerFailuresTotal.GetMetricWithLabelValues("parallel")
	require.NoError(t, err)
	require.NoError(t, c.Write(&metric))
	assert.Equal(t, 1.0, metric.Counter.GetValue())

	c, err = r.GraphClassificationsTotal.GetMetricWithLabelValues("sparse")
	require.NoError(t, err)
	require.NoError(t, c.Write(&metric))
	assert.Equal(t, 2.0, metric.Counter.GetValue())
}

func TestGauges(t *testing.T) {
	r := NewRegistry()
	r.UpdateGraphMetrics(4, 5)
	r.RecordResult(15.65, 4)

	var metric dto.Metric
	require.NoError(t, r.GraphEdges.Write(&metric))
	assert.Equal(t, 5.0, metric.Gauge.GetValue())
	require.NoError(t, r.LastPathDistance.Write(&metric))
	assert.Equal(t, 15.65, metric.Gauge.GetValue())
}

func TestSolveReportsIntoRegistry(t *testing.T) {
	r := NewRegistry()
	g := longestpathGraph(t)

	_, err := longestpath.Solve(t.Context(), g, longestpath.WithRecorder(r))
	require.NoError(t, err)

	var metric dto.Metric
	c, err := r.SolvesTotal.GetMetricWithLabelValues("exhaustive", longestpath.StatusOK)
	require.NoError(t, err)
	require.NoError(t, c.Write(&metric))
	assert.Equal(t, 1.0, metric.Counter.GetValue())
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.RecordSolve("adaptive", "ok", time.Millisecond, 7, 0)

	path := filepath.Join(t.TempDir(), "longpath.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `longpath_solves_total{status="ok",strategy="adaptive"} 1`), text)
	assert.Contains(t, text, "go_goroutines")

	assert.ErrorIs(t, r.WriteTextfile(""), ErrNoPath)
}

func TestConcurrentRecording(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.RecordSolve("parallel", "ok", time.Microsecond, 1, 1)
				r.RecordWorkerFailure("parallel")
			}
		}()
	}
	wg.Wait()

	var metric dto.Metric
	c, err := r.WorkerFailuresTotal.GetMetricWithLabelValues("parallel")
	require.NoError(t, err)
	require.NoError(t, c.Write(&metric))
	assert.Equal(t, 800.0, metric.Counter.GetValue())
}
