// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Neighbor, Edge, Graph, GraphOption, sentinel errors and NewGraph.
// Determinism:
//   - Adjacency lists keep insertion order; nothing is re-sorted on write.
// Concurrency:
//   - A single sync.RWMutex guards vertex set, adjacency and edge catalog.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadWeight is the umbrella sentinel for rejected edge weights.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrNegativeWeight indicates a weight below zero. Matches ErrBadWeight.
	ErrNegativeWeight error = &weightError{msg: "core: negative edge weight"}

	// ErrNonFiniteWeight indicates a NaN or infinite weight. Matches ErrBadWeight.
	ErrNonFiniteWeight error = &weightError{msg: "core: non-finite edge weight"}

	// ErrGraphNil is returned by helpers that receive a nil *Graph.
	ErrGraphNil = errors.New("core: graph is nil")
)

// weightError lets the specific weight sentinels satisfy errors.Is(err, ErrBadWeight).
type weightError struct{ msg string }

func (e *weightError) Error() string        { return e.msg }
func (e *weightError) Is(target error) bool { return target == ErrBadWeight }

// Vertex is an opaque non-negative vertex identifier.
type Vertex uint64

// Neighbor is one adjacency entry: the far endpoint and the weight of that edge copy.
type Neighbor struct {
	// To is the neighbouring vertex.
	To Vertex

	// Weight is the non-negative weight of this edge copy.
	Weight float64
}

// Edge records a single undirected AddEdge call.
type Edge struct {
	From   Vertex
	To     Vertex
	Weight float64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithEdgeCapacity pre-sizes the edge catalog for roughly n insertions.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edges = make([]Edge, 0, n)
		}
	}
}

// Graph is an undirected, non-negatively weighted multigraph.
//
// Every AddEdge(u, v, w) appends (v, w) to u's adjacency and (u, w) to v's,
// so a self-loop contributes two entries to its vertex. Parallel edges are kept
// as distinct entries. The graph has no removal API and is meant to be treated
// as read-only once built; all methods are nevertheless safe for concurrent use.
type Graph struct {
	mu sync.RWMutex

	// adjacency[v] lists v's entries in insertion order.
	adjacency map[Vertex][]Neighbor

	// edges holds every AddEdge call in insertion order.
	edges []Edge
}

// NewGraph returns an empty Graph configured by opts.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[Vertex][]Neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
