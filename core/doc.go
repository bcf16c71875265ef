// Package core provides the thread-safe in-memory graph used by every other
// longpath package.
//
// The Graph G = (V, E) is undirected and carries non-negative float64 weights:
//
//   - Vertices are opaque uint64 identifiers (Vertex) registered implicitly by AddEdge.
//   - Each vertex owns an ordered adjacency list of Neighbor{To, Weight} entries,
//     kept in insertion order so that searches enumerate neighbours reproducibly.
//   - Parallel edges are distinct entries; a self-loop (u,u,w) yields two (u,w)
//     entries in u's list.
//   - There is no removal API: build once, then read from as many goroutines as needed.
//
// Core Methods:
//
//	AddEdge(u, v Vertex, w float64) error  // O(1) amortized
//	Neighbors(v Vertex) []Neighbor         // O(deg v), copy, nil for unknown v
//	Vertices() []Vertex                    // O(V log V), ascending
//	HasVertex, HasEdge, Degree, VertexCount, EdgeCount, Edges
//	Stats() *GraphStats                    // O(V+E) diagnostics snapshot
//
// Views:
//
//	InducedSubgraph(g, keep) *Graph        // O(V+E), source untouched
//
// Errors:
//
//	ErrBadWeight        - umbrella for rejected weights.
//	ErrNegativeWeight   - w < 0 (errors.Is(err, ErrBadWeight) holds).
//	ErrNonFiniteWeight  - w is NaN or ±Inf (errors.Is(err, ErrBadWeight) holds).
//	ErrGraphNil         - nil *Graph given to a helper.
//
// Concurrency: a single sync.RWMutex guards adjacency and the edge catalog.
// Reads take the read lock and never expose internal slices.
package core
