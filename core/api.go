// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade over a Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is an immutable-by-convention summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	SelfLoops   int

	// MaxDegree is the largest adjacency length of any vertex.
	MaxDegree int

	TotalWeight float64
	MaxWeight   float64

	// Density is EdgeCount / (n(n-1)/2); zero when n < 2. Parallel edges can push it above 1.
	Density float64
}

// Stats produces a deterministic snapshot of catalog sizes and weight figures.
//
// Implementation:
//   - Stage 1: Acquire the read lock once.
//   - Stage 2: Scan the edge catalog for loops and weight totals.
//   - Stage 3: Scan adjacency lengths for the maximum degree.
//
// Determinism:
//   - Deterministic for a fixed graph state. TotalWeight is summed in insertion order.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := &GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		if e.From == e.To {
			st.SelfLoops++
		}
		st.TotalWeight += e.Weight
		if e.Weight > st.MaxWeight {
			st.MaxWeight = e.Weight
		}
	}
	for _, adj := range g.adjacency {
		if len(adj) > st.MaxDegree {
			st.MaxDegree = len(adj)
		}
	}
	if n := st.VertexCount; n >= 2 {
		st.Density = float64(st.EdgeCount) / (float64(n) * float64(n-1) / 2)
	}

	return st
}
