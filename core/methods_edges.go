// File: methods_edges.go
// Role: Edge insertion and edge catalog queries: AddEdge, Edges, EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - AddEdge takes the write lock; queries take the read lock.

package core

import "math"

// AddEdge inserts the undirected edge {u, v} with weight w.
//
// Both endpoints are registered as vertices. The entry (v, w) is appended to
// u's adjacency and (u, w) to v's. For u == v both entries land in the same
// list. Parallel edges are allowed and kept distinct.
//
// Errors:
//   - ErrNegativeWeight if w < 0.
//   - ErrNonFiniteWeight if w is NaN or ±Inf.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v Vertex, w float64) error {
	if err := checkWeight(w); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[u] = append(g.adjacency[u], Neighbor{To: v, Weight: w})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{To: u, Weight: w})
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})

	return nil
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of successful AddEdge calls.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasEdge reports whether at least one edge copy joins u and v.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v Vertex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, nb := range g.adjacency[u] {
		if nb.To == v {
			return true
		}
	}

	return false
}

func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrNonFiniteWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	return nil
}
