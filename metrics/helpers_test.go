package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/core"
)

// longestpathGraph is a four-vertex graph that Solve routes to exhaustive search.
func longestpathGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 8.54))
	require.NoError(t, g.AddEdge(2, 3, 3.11))
	require.NoError(t, g.AddEdge(3, 4, 4))

	return g
}
