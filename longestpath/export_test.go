package longestpath

import (
	"context"

	"github.com/katalvlaran/longpath/core"
)

// BoundedSearchWithHook runs BoundedParallelSearch with hook called at the top
// of every worker, so tests can inject worker faults.
func BoundedSearchWithHook(ctx context.Context, g *core.Graph, hook func(slot int), opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	e := &boundedEngine{snap: newSnapshot(g), opts: o, onWorkerStart: hook}

	return e.search(ctx)
}

// SelectStarts exposes start-vertex selection in vertex ID space.
func SelectStarts(g *core.Graph, workers int) []core.Vertex {
	e := &boundedEngine{snap: newSnapshot(g), opts: Options{Workers: workers}}

	return e.snap.vertices(e.selectStarts())
}

// UpperBound exposes the pruning bound for vertex x given the visited set.
func UpperBound(g *core.Graph, x core.Vertex, visited []core.Vertex) float64 {
	snap := newSnapshot(g)
	s := newSearcher(context.Background(), snap, true)
	for _, v := range visited {
		s.visited[snap.index[v]] = true
	}

	return s.bound(snap.index[x])
}
