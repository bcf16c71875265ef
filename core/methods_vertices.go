// File: methods_vertices.go
// Role: Vertex queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - All methods take the read lock.
package core

import "slices"

// HasVertex reports whether v has been registered by some AddEdge call.
//
// Complexity:
//   - Time O(1).
func (g *Graph) HasVertex(v Vertex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[v]

	return ok
}

// Vertices returns every vertex ID in ascending order.
//
// Implementation:
//   - Stage 1: Snapshot the adjacency keys under the read lock.
//   - Stage 2: Sort ascending so enumeration is reproducible across runs.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	out := make([]Vertex, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	g.mu.RUnlock()

	slices.Sort(out)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of adjacency entries of v.
// A self-loop counts twice; an unknown vertex has degree 0.
func (g *Graph) Degree(v Vertex) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v])
}
