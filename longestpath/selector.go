package longestpath

import "github.com/katalvlaran/longpath/core"

// Classify maps vertex and edge counts to a Class:
// n == 0 → ClassEmpty; m == n(n-1)/2 → ClassComplete; m < 2n → ClassSparse;
// otherwise ClassGeneral. Parallel edges and self-loops count toward m, so
// the complete test is a count check, not a structural one.
func Classify(n, m int) Class {
	switch {
	case n == 0:
		return ClassEmpty
	case m == n*(n-1)/2:
		return ClassComplete
	case m < 2*n:
		return ClassSparse
	default:
		return ClassGeneral
	}
}

// ClassifyGraph classifies g by its vertex and edge counts. A nil graph is ClassEmpty.
func ClassifyGraph(g *core.Graph) Class {
	if g == nil {
		return ClassEmpty
	}

	return Classify(g.VertexCount(), g.EdgeCount())
}

// Select is the default strategy policy:
// n ≤ 4 → Exhaustive; complete and n > 6 → Adaptive; n > 8 → BoundedParallel;
// otherwise Exhaustive. Callers override it with WithStrategy.
func Select(n int, c Class) Strategy {
	switch {
	case n <= 4:
		return Exhaustive
	case c == ClassComplete && n > 6:
		return Adaptive
	case n > 8:
		return BoundedParallel
	default:
		return Exhaustive
	}
}
