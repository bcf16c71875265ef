// File: cycle.go
// Role: Cycle detection for the undirected multigraph.
//
// A forest with n vertices and c trees has exactly n-c edges, so the graph is
// cyclic iff it carries more non-loop edges than that, or any self-loop.
// Parallel edges count as 2-cycles.
//
// Complexity: O(V log V + E), the cost of Components.

package dfs

import (
	"context"

	"github.com/katalvlaran/longpath/core"
)

// HasCycle reports whether g contains a cycle.
func HasCycle(g *core.Graph) (bool, error) {
	return HasCycleContext(context.Background(), g)
}

// HasCycleContext is HasCycle with cancellation.
func HasCycleContext(ctx context.Context, g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	comps, err := ComponentsContext(ctx, g)
	if err != nil {
		return false, err
	}

	st := g.Stats()
	if st.SelfLoops > 0 {
		return true, nil
	}

	return st.EdgeCount > st.VertexCount-len(comps), nil
}
