// File: exhaustive.go
// Role: Exact search over every simple path from every start vertex.
//
// Tie-break: starts are tried in ascending vertex ID order, neighbours in
// adjacency insertion order, and a path replaces the incumbent only when it is
// strictly heavier. The first discovered path of maximal weight is returned.
//
// Complexity: O(n!) worst case; intended for small graphs or single components.

package longestpath

import (
	"context"

	"github.com/katalvlaran/longpath/core"
)

// ExhaustiveSearch returns the maximum-weight simple path of g.
//
// An empty graph, or one whose edges all weigh zero, yields an empty Result.
// If ctx ends mid-search the best path found so far is returned together with
// an error matching ErrSearchInterrupted and the context error.
func ExhaustiveSearch(ctx context.Context, g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return exhaustive(ctx, newSnapshot(g))
}

func exhaustive(ctx context.Context, snap *snapshot) (Result, error) {
	s := newSearcher(ctx, snap, false)
	err := s.runAll(allStarts(snap.n))

	res := snap.toResult(s.best)
	res.Strategy = Exhaustive
	res.Class = Classify(snap.n, snap.m)
	res.Stats = s.stats

	return res, interruption(err)
}

// allStarts returns 0..n-1.
func allStarts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
