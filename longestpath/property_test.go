package longestpath_test

import (
	"context"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longestpath"
)

// propEdges is the number of AddEdge calls per generated graph. With at most
// six vertices every strategy is exact, so results can be compared directly.
const propEdges = 9

// graphFrom builds a graph from parallel endpoint and weight slices.
func graphFrom(us, vs []int, ws []float64) *core.Graph {
	g := core.NewGraph()
	for i := range us {
		_ = g.AddEdge(core.Vertex(us[i]), core.Vertex(vs[i]), ws[i])
	}

	return g
}

func distinct(path []core.Vertex) bool {
	seen := make(map[core.Vertex]bool, len(path))
	for _, v := range path {
		if seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// TestSolverProperties checks invariants that must hold for any small graph.
func TestSolverProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	endpoints := gen.SliceOfN(propEdges, gen.IntRange(1, 6))
	weights := gen.SliceOfN(propEdges, gen.Float64Range(0, 10))
	ctx := context.Background()

	properties.Property("bounded parallel matches exhaustive", prop.ForAll(
		func(us, vs []int, ws []float64) bool {
			g := graphFrom(us, vs, ws)
			ex, err := longestpath.ExhaustiveSearch(ctx, g)
			if err != nil {
				return false
			}
			bp, err := longestpath.BoundedParallelSearch(ctx, g, longestpath.WithWorkers(3))
			if err != nil {
				return false
			}

			return math.Abs(ex.Distance-bp.Distance) <= 1e-9
		},
		endpoints, endpoints, weights,
	))

	properties.Property("adaptive matches exhaustive", prop.ForAll(
		func(us, vs []int, ws []float64) bool {
			g := graphFrom(us, vs, ws)
			ex, err := longestpath.ExhaustiveSearch(ctx, g)
			if err != nil {
				return false
			}
			ad, err := longestpath.AdaptiveSearch(ctx, g)
			if err != nil {
				return false
			}

			return math.Abs(ex.Distance-ad.Distance) <= 1e-9
		},
		endpoints, endpoints, weights,
	))

	properties.Property("every strategy returns a valid simple path", prop.ForAll(
		func(us, vs []int, ws []float64) bool {
			g := graphFrom(us, vs, ws)
			for _, s := range []longestpath.Strategy{
				longestpath.Auto, longestpath.Exhaustive, longestpath.BoundedParallel, longestpath.Adaptive,
			} {
				res, err := longestpath.Solve(ctx, g, longestpath.WithStrategy(s))
				if err != nil || !distinct(res.Path) {
					return false
				}
				if longestpath.ValidateResult(g, res) != nil {
					return false
				}
			}

			return true
		},
		endpoints, endpoints, weights,
	))

	properties.Property("large weights keep the distance consistent", prop.ForAll(
		func(us, vs []int, ws []float64) bool {
			g := graphFrom(us, vs, ws)
			for _, s := range []longestpath.Strategy{
				longestpath.Exhaustive, longestpath.BoundedParallel, longestpath.Adaptive,
			} {
				res, err := longestpath.Solve(ctx, g, longestpath.WithStrategy(s))
				if err != nil || longestpath.ValidateResult(g, res) != nil {
					return false
				}
			}

			return true
		},
		endpoints, endpoints, gen.SliceOfN(propEdges, gen.Float64Range(0, 1e12)),
	))

	properties.Property("solving twice gives the same answer", prop.ForAll(
		func(us, vs []int, ws []float64) bool {
			g := graphFrom(us, vs, ws)
			a, errA := longestpath.Solve(ctx, g)
			b, errB := longestpath.Solve(ctx, g)
			if errA != nil || errB != nil || len(a.Path) != len(b.Path) {
				return false
			}
			for i := range a.Path {
				if a.Path[i] != b.Path[i] {
					return false
				}
			}

			return a.Distance == b.Distance
		},
		endpoints, endpoints, weights,
	))

	properties.TestingRun(t)
}
