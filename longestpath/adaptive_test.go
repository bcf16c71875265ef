package longestpath_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longestpath"
)

func TestAdaptive_SmallGraphsAreExact(t *testing.T) {
	for name, g := range map[string]*core.Graph{
		"chain":  chainGraph(t),
		"ring":   ringGraph(t),
		"sample": sampleGraph(t),
	} {
		t.Run(name, func(t *testing.T) {
			want, err := longestpath.ExhaustiveSearch(context.Background(), g)
			require.NoError(t, err)

			got, err := longestpath.AdaptiveSearch(context.Background(), g)
			require.NoError(t, err)
			assert.Equal(t, longestpath.Adaptive, got.Strategy)
			assert.InDelta(t, want.Distance, got.Distance, 1e-9)
		})
	}
}

func TestAdaptive_Empty(t *testing.T) {
	res, err := longestpath.AdaptiveSearch(context.Background(), core.NewGraph())
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, longestpath.ClassEmpty, res.Class)
	assert.Equal(t, longestpath.Adaptive, res.Strategy)
}

func TestAdaptive_CompleteUsesGreedy(t *testing.T) {
	g := completeGraph(t, 7)
	res, err := longestpath.AdaptiveSearch(context.Background(), g)
	require.NoError(t, err)
	require.NoError(t, longestpath.ValidateResult(g, res))

	assert.Equal(t, longestpath.ClassComplete, res.Class)
	assert.Len(t, res.Path, 7, "greedy walk on a complete graph visits every vertex")
	assert.Equal(t, 7, res.Stats.Starts)
	assert.Zero(t, res.Stats.Pruned)
}

func TestAdaptive_SparseSolvesComponents(t *testing.T) {
	// A five-vertex chain of unit edges next to a heavy triangle.
	g := mustGraph(t,
		testEdge{10, 11, 1}, testEdge{11, 12, 1}, testEdge{12, 13, 1}, testEdge{13, 14, 1},
		testEdge{1, 2, 5}, testEdge{2, 3, 5}, testEdge{3, 1, 1},
	)
	res, err := longestpath.AdaptiveSearch(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, longestpath.ClassSparse, res.Class)
	assert.Equal(t, []core.Vertex{1, 2, 3}, res.Path)
	assert.Equal(t, []float64{5, 5}, res.Legs)
	assert.Equal(t, 10.0, res.Distance)
	require.NoError(t, longestpath.ValidateResult(g, res))
}

func TestAdaptive_GeneralUsesBounded(t *testing.T) {
	// K7 minus edge 1-2 has 20 edges: neither complete nor sparse.
	g := core.NewGraph()
	for i := 1; i <= 7; i++ {
		for j := i + 1; j <= 7; j++ {
			if i == 1 && j == 2 {
				continue
			}
			require.NoError(t, g.AddEdge(core.Vertex(i), core.Vertex(j), float64(i+j)))
		}
	}
	res, err := longestpath.AdaptiveSearch(context.Background(), g)
	require.NoError(t, err)
	require.NoError(t, longestpath.ValidateResult(g, res))

	assert.Equal(t, longestpath.ClassGeneral, res.Class)
	assert.Equal(t, longestpath.Adaptive, res.Strategy)
	assert.Equal(t, 7, res.Stats.Starts)
}

func TestAdaptive_Errors(t *testing.T) {
	_, err := longestpath.AdaptiveSearch(context.Background(), nil)
	assert.ErrorIs(t, err, longestpath.ErrGraphNil)

	_, err = longestpath.AdaptiveSearch(context.Background(), ringGraph(t), longestpath.WithWorkers(0))
	assert.ErrorIs(t, err, longestpath.ErrBadWorkerCount)
}

func TestAdaptive_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, g := range map[string]*core.Graph{
		"complete": completeGraph(t, 8),
		"sparse":   mustGraph(t, testEdge{1, 2, 1}, testEdge{3, 4, 1}, testEdge{5, 6, 1}, testEdge{7, 8, 1}),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := longestpath.AdaptiveSearch(ctx, g)
			require.ErrorIs(t, err, longestpath.ErrSearchInterrupted)
			assert.True(t, res.Empty())
		})
	}
}
