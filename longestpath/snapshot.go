// File: snapshot.go
// Role: Dense, index-based copy of a core.Graph for the search hot path.
//
// Vertices are renumbered 0..n-1 in ascending ID order, so iterating indices
// visits vertices in ascending ID order. Adjacency keeps insertion order.
// byWeight holds the same arcs ordered by descending weight (stable on ties)
// for the pruned search, and topSums[v][k] is the sum of the k heaviest arc
// weights of v.

package longestpath

import (
	"slices"

	"github.com/katalvlaran/longpath/core"
)

// arc is one adjacency entry in index space.
type arc struct {
	to int
	w  float64
}

type snapshot struct {
	n     int
	m     int
	ids   []core.Vertex
	index map[core.Vertex]int

	adj      [][]arc
	byWeight [][]arc
	topSums  [][]float64
}

// newSnapshot prefetches g under a single read lock.
// Complexity: O(V log V + E log Δ).
func newSnapshot(g *core.Graph) *snapshot {
	adjacency := g.AdjacencySnapshot()
	s := &snapshot{
		n:     len(adjacency),
		m:     g.EdgeCount(),
		ids:   make([]core.Vertex, 0, len(adjacency)),
		index: make(map[core.Vertex]int, len(adjacency)),
	}
	for v := range adjacency {
		s.ids = append(s.ids, v)
	}
	slices.Sort(s.ids)
	for i, v := range s.ids {
		s.index[v] = i
	}

	s.adj = make([][]arc, s.n)
	s.byWeight = make([][]arc, s.n)
	s.topSums = make([][]float64, s.n)
	for i, v := range s.ids {
		nbs := adjacency[v]
		row := make([]arc, len(nbs))
		for j, nb := range nbs {
			row[j] = arc{to: s.index[nb.To], w: nb.Weight}
		}
		s.adj[i] = row

		sorted := slices.Clone(row)
		slices.SortStableFunc(sorted, func(a, b arc) int {
			switch {
			case a.w > b.w:
				return -1
			case a.w < b.w:
				return 1
			default:
				return 0
			}
		})
		s.byWeight[i] = sorted

		sums := make([]float64, len(sorted)+1)
		for k, a := range sorted {
			sums[k+1] = sums[k] + a.w
		}
		s.topSums[i] = sums
	}

	return s
}

// degree returns the adjacency length of index v.
func (s *snapshot) degree(v int) int { return len(s.adj[v]) }

// vertices converts an index path to vertex IDs.
func (s *snapshot) vertices(path []int) []core.Vertex {
	if len(path) == 0 {
		return nil
	}
	out := make([]core.Vertex, len(path))
	for i, p := range path {
		out[i] = s.ids[p]
	}

	return out
}
