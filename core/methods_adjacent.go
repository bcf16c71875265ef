// File: methods_adjacent.go
// Role: Neighborhood API.
// Determinism:
//   - Neighbors() returns entries in insertion order.
// Concurrency:
//   - Read lock only; the returned slice never aliases internal storage.

package core

// Neighbors returns a copy of v's adjacency entries in insertion order.
//
// An unknown vertex yields nil rather than an error, matching the behaviour of
// an isolated vertex. Callers may freely modify the returned slice.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v Vertex) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adjacency[v]
	if len(src) == 0 {
		return nil
	}
	out := make([]Neighbor, len(src))
	copy(out, src)

	return out
}

// AdjacencySnapshot returns a deep copy of the whole adjacency map taken under
// one read lock, so every list reflects the same moment.
//
// Complexity: O(V + E).
func (g *Graph) AdjacencySnapshot() map[Vertex][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[Vertex][]Neighbor, len(g.adjacency))
	for v, src := range g.adjacency {
		cp := make([]Neighbor, len(src))
		copy(cp, src)
		out[v] = cp
	}

	return out
}
