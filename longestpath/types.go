// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Strategy and Class enums, Result, SearchStats and sentinel errors.

package longestpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/longpath/core"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to a solver.
	ErrGraphNil = errors.New("longestpath: graph is nil")

	// ErrUnsupportedStrategy indicates an unknown Strategy value or name.
	ErrUnsupportedStrategy = errors.New("longestpath: unsupported strategy")

	// ErrBadWorkerCount indicates a worker count outside [1, MaxWorkers].
	ErrBadWorkerCount = errors.New("longestpath: worker count out of range")

	// ErrWorkerPanic wraps a panic recovered inside one parallel search worker.
	ErrWorkerPanic = errors.New("longestpath: search worker panicked")

	// ErrAllWorkersFailed is returned when every parallel worker failed.
	ErrAllWorkersFailed = errors.New("longestpath: all search workers failed")

	// ErrSearchInterrupted is returned, together with the best partial result,
	// when the context is cancelled or its deadline passes mid-search.
	ErrSearchInterrupted = errors.New("longestpath: search interrupted")

	// ErrInvalidPath is returned by ValidateResult for a malformed result.
	ErrInvalidPath = errors.New("longestpath: invalid path")
)

// Strategy selects a solving algorithm.
type Strategy int

const (
	// Auto lets Select pick a strategy from size and classification.
	Auto Strategy = iota

	// Exhaustive enumerates every simple path. Always optimal.
	Exhaustive

	// BoundedParallel runs a pruned search from curated start vertices in parallel.
	BoundedParallel

	// Adaptive classifies the graph and routes to greedy, per-component or bounded search.
	Adaptive
)

// String returns the canonical lowercase name.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Exhaustive:
		return "exhaustive"
	case BoundedParallel:
		return "parallel"
	case Adaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name to a Strategy. Besides the canonical names it
// accepts "original" for Exhaustive and "advanced" for Adaptive.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "exhaustive", "original":
		return Exhaustive, nil
	case "parallel", "bounded":
		return BoundedParallel, nil
	case "adaptive", "advanced":
		return Adaptive, nil
	default:
		return Auto, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, name)
	}
}

// Class is the structural classification used by Adaptive and Select.
type Class int

const (
	// ClassEmpty is a graph without vertices.
	ClassEmpty Class = iota

	// ClassComplete means m == n(n-1)/2.
	ClassComplete

	// ClassSparse means m < 2n.
	ClassSparse

	// ClassGeneral is everything else.
	ClassGeneral
)

// String returns the lowercase class name.
func (c Class) String() string {
	switch c {
	case ClassEmpty:
		return "empty"
	case ClassComplete:
		return "complete"
	case ClassSparse:
		return "sparse"
	case ClassGeneral:
		return "general"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// SearchStats reports how much work a search did.
type SearchStats struct {
	// Expanded counts vertices pushed onto a DFS stack.
	Expanded int64

	// Pruned counts branches cut by the upper bound.
	Pruned int64

	// Starts is the number of start vertices searched.
	Starts int

	// WorkerFailures counts parallel workers whose slot was discarded.
	WorkerFailures int

	// Fallback is set when an exhaustive re-run was triggered.
	Fallback bool
}

func (s *SearchStats) add(o SearchStats) {
	s.Expanded += o.Expanded
	s.Pruned += o.Pruned
	s.Starts += o.Starts
	s.WorkerFailures += o.WorkerFailures
	s.Fallback = s.Fallback || o.Fallback
}

// Result is the outcome of a solve.
//
// Path lists distinct vertices; Legs[i] is the weight of the edge copy used
// between Path[i] and Path[i+1]. Distance is the sum of Legs stabilised to 1e-9.
// An empty Path with Distance 0 means no positive-weight path exists.
type Result struct {
	Path     []core.Vertex
	Legs     []float64
	Distance float64

	// Strategy is the strategy that ran, with Auto already resolved.
	Strategy Strategy

	// Class is the classification of the input graph.
	Class Class

	Stats SearchStats
}

// Empty reports whether no path was found.
func (r Result) Empty() bool { return len(r.Path) == 0 }

// String renders a Result as "[a b c] (distance)" for logs and examples.
func (r Result) String() string {
	if r.Empty() {
		return "<no path>"
	}

	return fmt.Sprintf("%v (%g)", r.Path, r.Distance)
}
