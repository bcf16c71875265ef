// File: validate.go
// Role: Result validation and distance stabilisation shared by all strategies.

package longestpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/longpath/core"
)

// roundScale controls final distance stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// roundLimit bounds the magnitudes that get stabilised. Above it v*roundScale
// no longer has nine spare decimal digits and rounding only moves v.
const roundLimit = 1e6

// distTolerance is the relative slack used when comparing a reported distance
// against a recomputed sum of legs. Sums below 1 use it as an absolute bound.
const distTolerance = 1e-6

// round1e9 stabilises v to nine decimal places. Values at or above roundLimit
// and non-finite values are returned unchanged.
func round1e9(v float64) float64 {
	if !(math.Abs(v) < roundLimit) {
		return v
	}

	return math.Round(v*roundScale) / roundScale
}

// toResult converts an index-space candidate to a public Result.
func (s *snapshot) toResult(c candidate) Result {
	if len(c.path) == 0 {
		return Result{}
	}
	legs := make([]float64, len(c.legs))
	copy(legs, c.legs)

	return Result{
		Path:     s.vertices(c.path),
		Legs:     legs,
		Distance: round1e9(c.dist),
	}
}

// ValidateResult checks that res describes a simple path of g whose every leg
// matches an existing edge copy and whose Distance equals the sum of Legs.
//
// Errors: ErrGraphNil, or ErrInvalidPath wrapped with the first violation found.
//
// Complexity: O(L · Δ) where L is the path length and Δ the maximum degree.
func ValidateResult(g *core.Graph, res Result) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(res.Path) == 0 {
		if len(res.Legs) != 0 || res.Distance != 0 {
			return fmt.Errorf("%w: empty path with legs or distance", ErrInvalidPath)
		}

		return nil
	}
	if len(res.Legs) != len(res.Path)-1 {
		return fmt.Errorf("%w: %d legs for %d vertices", ErrInvalidPath, len(res.Legs), len(res.Path))
	}

	seen := make(map[core.Vertex]struct{}, len(res.Path))
	for _, v := range res.Path {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: vertex %d repeated", ErrInvalidPath, v)
		}
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: vertex %d not in graph", ErrInvalidPath, v)
		}
		seen[v] = struct{}{}
	}

	var sum float64
	for i, w := range res.Legs {
		u, v := res.Path[i], res.Path[i+1]
		if !hasEdgeCopy(g, u, v, w) {
			return fmt.Errorf("%w: no edge %d-%d with weight %g", ErrInvalidPath, u, v, w)
		}
		sum += w
	}
	tol := distTolerance * math.Max(1, math.Abs(sum))
	if sum != res.Distance && !(math.Abs(sum-res.Distance) <= tol) {
		return fmt.Errorf("%w: distance %g, legs sum to %g", ErrInvalidPath, res.Distance, sum)
	}

	return nil
}

func hasEdgeCopy(g *core.Graph, u, v core.Vertex, w float64) bool {
	for _, nb := range g.Neighbors(u) {
		if nb.To == v && nb.Weight == w {
			return true
		}
	}

	return false
}
