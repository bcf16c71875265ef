// File: kernel.go
// Role: Depth-first simple-path enumeration with optional branch-and-bound pruning.
//
// The walk uses an explicit stack of frames (vertex, neighbour cursor,
// accumulated distance) and reproduces the visit/backtrack order of the
// textbook recursion: mark, push, record if strictly better, try each unvisited
// neighbour, then unmark and pop.
//
// Pruning (searcher.prune): before stepping from the top vertex to unvisited x
// over an arc of weight w, let k be the number of x's arcs whose target is
// unvisited and bound = topSums[x][k]. The branch is skipped iff
// acc + w + bound <= best. The pruned search also tries heavier arcs first.
//
// Cancellation: the context is polled every checkEvery steps.

package longestpath

import (
	"context"
	"fmt"
)

// checkEvery must be a power of two.
const checkEvery = 1024

type frame struct {
	v    int
	next int
	acc  float64
}

// candidate is a recorded best path in index space.
type candidate struct {
	path []int
	legs []float64
	dist float64
}

// searcher owns all mutable state of one sequential search.
// It is never shared between goroutines.
type searcher struct {
	ctx   context.Context
	snap  *snapshot
	arcs  [][]arc
	prune bool

	visited []bool
	path    []int
	legs    []float64
	stack   []frame
	steps   uint64

	best  candidate
	stats SearchStats
}

func newSearcher(ctx context.Context, snap *snapshot, prune bool) *searcher {
	s := &searcher{
		ctx:     ctx,
		snap:    snap,
		arcs:    snap.adj,
		prune:   prune,
		visited: make([]bool, snap.n),
		path:    make([]int, 0, snap.n),
		legs:    make([]float64, 0, snap.n),
		stack:   make([]frame, 0, snap.n),
	}
	if prune {
		s.arcs = snap.byWeight
	}

	return s
}

// interrupted polls the context every checkEvery steps.
func (s *searcher) interrupted() bool {
	s.steps++
	if s.steps&(checkEvery-1) != 0 {
		return false
	}

	return s.ctx.Err() != nil
}

// bound returns the heuristic upper bound on what x can still contribute.
func (s *searcher) bound(x int) float64 {
	k := 0
	for _, a := range s.snap.adj[x] {
		if !s.visited[a.to] {
			k++
		}
	}

	return s.snap.topSums[x][k]
}

// record keeps the current path if it is strictly better than the best so far.
func (s *searcher) record(acc float64) {
	if acc <= s.best.dist {
		return
	}
	s.best.dist = acc
	s.best.path = append(s.best.path[:0], s.path...)
	s.best.legs = append(s.best.legs[:0], s.legs...)
}

// run enumerates simple paths starting at start. The best candidate carries
// over between calls, so running every start on one searcher yields the
// global best. It returns the context error if the walk was cut short.
func (s *searcher) run(start int) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	s.stats.Starts++
	s.stats.Expanded++
	s.visited[start] = true
	s.path = append(s.path[:0], start)
	s.legs = s.legs[:0]
	s.record(0)
	s.stack = append(s.stack[:0], frame{v: start})

	for len(s.stack) > 0 {
		if s.interrupted() {
			s.unwind()

			return s.ctx.Err()
		}

		top := &s.stack[len(s.stack)-1]
		row := s.arcs[top.v]
		if top.next == len(row) {
			s.visited[top.v] = false
			s.path = s.path[:len(s.path)-1]
			if len(s.legs) > 0 {
				s.legs = s.legs[:len(s.legs)-1]
			}
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}

		a := row[top.next]
		top.next++
		if s.visited[a.to] {
			continue
		}
		acc := top.acc + a.w
		if s.prune && acc+s.bound(a.to) <= s.best.dist {
			s.stats.Pruned++
			continue
		}

		s.visited[a.to] = true
		s.path = append(s.path, a.to)
		s.legs = append(s.legs, a.w)
		s.stats.Expanded++
		s.record(acc)
		s.stack = append(s.stack, frame{v: a.to, acc: acc})
	}

	return nil
}

// unwind clears the visited marks of an abandoned walk.
func (s *searcher) unwind() {
	for _, f := range s.stack {
		s.visited[f.v] = false
	}
	s.stack = s.stack[:0]
	s.path = s.path[:0]
	s.legs = s.legs[:0]
}

// runAll runs every start in order and stops at the first interruption.
func (s *searcher) runAll(starts []int) error {
	for _, st := range starts {
		if err := s.run(st); err != nil {
			return err
		}
	}

	return nil
}

// interruption wraps a context error so it matches ErrSearchInterrupted.
func interruption(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrSearchInterrupted, err)
}
