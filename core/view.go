// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Per-vertex adjacency order of the source is preserved.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph induced by the vertex set keep: it holds
// every kept vertex (isolated ones included) and every edge whose endpoints are
// both kept. The input graph is not mutated.
//
// Adjacency entries are copied list by list, so each kept vertex sees its
// surviving neighbours in the same relative order as in g. The edge catalog
// keeps the source insertion order.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep map[Vertex]bool) *Graph {
	out := NewGraph()
	if g == nil {
		return out
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for v, adj := range g.adjacency {
		if !keep[v] {
			continue
		}
		list := make([]Neighbor, 0, len(adj))
		for _, nb := range adj {
			if keep[nb.To] {
				list = append(list, nb)
			}
		}
		out.adjacency[v] = list
	}
	for _, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			out.edges = append(out.edges, e)
		}
	}

	return out
}
