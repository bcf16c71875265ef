package longestpath_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/core"
)

// testEdge is one AddEdge call.
type testEdge struct {
	u, v core.Vertex
	w    float64
}

// mustGraph builds a graph from edges, failing the test on any rejected edge.
func mustGraph(t testing.TB, edges ...testEdge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// chainGraph is 1–2(1.0)–3(2.0)–4(3.0).
func chainGraph(t testing.TB) *core.Graph {
	return mustGraph(t, testEdge{1, 2, 1}, testEdge{2, 3, 2}, testEdge{3, 4, 3})
}

// ringGraph is the 4-cycle 1-2-3-4-1 with weights 1,2,3,4.
func ringGraph(t testing.TB) *core.Graph {
	return mustGraph(t, testEdge{1, 2, 1}, testEdge{2, 3, 2}, testEdge{3, 4, 3}, testEdge{4, 1, 4})
}

// sampleGraph is the five-edge sample whose optimum is 1-2-3-4 at 15.65.
func sampleGraph(t testing.TB) *core.Graph {
	return mustGraph(t,
		testEdge{1, 2, 8.54},
		testEdge{2, 3, 3.11},
		testEdge{3, 1, 2.19},
		testEdge{3, 4, 4.0},
		testEdge{4, 1, 1.4},
	)
}

// completeGraph builds K_n on vertices 1..n with deterministic varied weights.
func completeGraph(t testing.TB, n int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			require.NoError(t, g.AddEdge(core.Vertex(i), core.Vertex(j), float64(1+(i*7+j*13)%10)))
		}
	}

	return g
}

// fakeRecorder captures Recorder calls.
type fakeRecorder struct {
	mu       sync.Mutex
	solves   []string
	failures int
	classes  []string
}

func (r *fakeRecorder) RecordSolve(strategy, status string, _ time.Duration, _, _ int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solves = append(r.solves, strategy+"/"+status)
}

func (r *fakeRecorder) RecordWorkerFailure(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *fakeRecorder) RecordClassification(class string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes = append(r.classes, class)
}
