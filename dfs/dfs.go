// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Components(g): connected components built on the forest traversal
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components, starting roots in ascending vertex order;
// otherwise, it starts only from start.
// Neighbors are explored in adjacency insertion order; self-loops are ignored.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, start core.Vertex, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	vertices := g.Vertices()
	res := &DFSResult{
		Order:   make([]core.Vertex, 0, len(vertices)),
		Depth:   make(map[core.Vertex]int, len(vertices)),
		Parent:  make(map[core.Vertex]core.Vertex, len(vertices)),
		Visited: make(map[core.Vertex]bool, len(vertices)),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range vertices {
			if res.Visited[v] {
				continue
			}
			res.Roots = append(res.Roots, v)
			if err := walker.traverse(v, 0); err != nil {
				return res, err
			}
		}
	} else {
		res.Roots = append(res.Roots, start)
		if err := walker.traverse(start, 0); err != nil {
			return res, err
		}
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits vertex v at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(v core.Vertex, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 5. Explore each neighbor entry
	for _, nb := range w.graph.Neighbors(v) {
		if nb.To == v {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb.To) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nb.To] {
			w.res.Parent[nb.To] = v
			if err := w.traverse(nb.To, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}
