// File: bounded.go
// Role: Parallel branch-and-bound search from curated start vertices.
//
// Steps:
//  1. n == 0 → empty result; n ≤ sequentialLimit → one pruned searcher over all starts.
//  2. Start selection: all vertices when n ≤ allStartsLimit, otherwise the
//     max(1, min(2·workers, n/2)) highest-degree vertices (ties by ascending ID).
//  3. Fan-out: one task per start on an errgroup limited to opts.Workers.
//     Each task owns its searcher and writes only its own slot.
//  4. Join, then a sequential reduce: strictly heavier wins, so on ties the
//     earliest slot is kept. Panicked slots are excluded and counted.
//  5. Exactness fallback: when n ≤ exactLimit and the best path misses a
//     vertex or any branch was pruned, an exhaustive pass runs and replaces
//     the result if strictly heavier. The pruning bound is not a certificate,
//     and the pruned-branch trigger is what keeps small graphs exact.

package longestpath

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/ctxlog"
)

const (
	sequentialLimit = 4
	exactLimit      = 6
	allStartsLimit  = 10
)

// boundedEngine carries the prefetched graph and policy of one parallel solve.
type boundedEngine struct {
	snap *snapshot
	opts Options

	// onWorkerStart, if set, runs at the top of every worker. Tests use it to inject faults.
	onWorkerStart func(slot int)
}

// workerSlot is the private output of one worker.
type workerSlot struct {
	best   candidate
	stats  SearchStats
	err    error
	failed bool
}

// BoundedParallelSearch runs the parallel pruned search on g.
//
// The result is usually optimal and always optimal for graphs with at most six
// vertices. If every worker fails the error matches ErrAllWorkersFailed and
// carries each worker's error. If ctx ends mid-search the best partial result
// is returned with an error matching ErrSearchInterrupted.
func BoundedParallelSearch(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	e := &boundedEngine{snap: newSnapshot(g), opts: o}

	return e.search(ctx)
}

func (e *boundedEngine) search(ctx context.Context) (Result, error) {
	n := e.snap.n
	if n == 0 {
		return Result{Strategy: BoundedParallel}, nil
	}

	var (
		best   candidate
		stats  SearchStats
		runErr error
	)
	if n <= sequentialLimit {
		s := newSearcher(ctx, e.snap, true)
		runErr = s.runAll(allStarts(n))
		best, stats = s.best, s.stats
	} else {
		var failErr error
		best, stats, runErr, failErr = e.fanOut(ctx)
		if failErr != nil {
			return Result{Strategy: BoundedParallel, Class: Classify(n, e.snap.m), Stats: stats}, failErr
		}
	}

	if runErr == nil && n <= exactLimit && (len(best.path) < n || stats.Pruned > 0) {
		stats.Fallback = true
		s := newSearcher(ctx, e.snap, false)
		runErr = s.runAll(allStarts(n))
		stats.Expanded += s.stats.Expanded
		if s.best.dist > best.dist {
			best = s.best
		}
	}

	res := e.snap.toResult(best)
	res.Strategy = BoundedParallel
	res.Class = Classify(n, e.snap.m)
	res.Stats = stats

	return res, interruption(runErr)
}

// fanOut runs one pruned searcher per start and reduces the slots.
// runErr is the first context error seen; failErr is set only when every worker panicked.
func (e *boundedEngine) fanOut(ctx context.Context) (best candidate, stats SearchStats, runErr, failErr error) {
	log := ctxlog.FromContext(ctx)
	starts := e.selectStarts()
	slots := make([]workerSlot, len(starts))
	log.Debug("bounded search fan-out", "starts", len(starts), "workers", e.opts.Workers)

	var grp errgroup.Group
	grp.SetLimit(e.opts.Workers)
	for i, st := range starts {
		grp.Go(func() error {
			e.work(ctx, i, st, &slots[i])

			return nil
		})
	}
	_ = grp.Wait()

	var fails []error
	for i := range slots {
		sl := &slots[i]
		if sl.failed {
			fails = append(fails, sl.err)
			stats.WorkerFailures++
			e.opts.Recorder.RecordWorkerFailure(BoundedParallel.String())
			log.Warn("search worker failed", "slot", i, "start", e.snap.ids[starts[i]], "err", sl.err)
			continue
		}
		stats.add(sl.stats)
		if sl.err != nil && runErr == nil {
			runErr = sl.err
		}
		if sl.best.dist > best.dist {
			best = sl.best
		}
	}
	if len(fails) == len(slots) {
		return candidate{}, stats, nil, errors.Join(append([]error{ErrAllWorkersFailed}, fails...)...)
	}

	return best, stats, runErr, nil
}

// work is the body of one worker. A panic marks the slot failed.
func (e *boundedEngine) work(ctx context.Context, slot, start int, out *workerSlot) {
	defer func() {
		if r := recover(); r != nil {
			*out = workerSlot{
				failed: true,
				err:    fmt.Errorf("%w: start %d: %v", ErrWorkerPanic, e.snap.ids[start], r),
			}
		}
	}()
	if e.onWorkerStart != nil {
		e.onWorkerStart(slot)
	}

	s := newSearcher(ctx, e.snap, true)
	err := s.run(start)
	*out = workerSlot{best: s.best, stats: s.stats, err: err}
}

// selectStarts returns the start indices in fan-out order.
func (e *boundedEngine) selectStarts() []int {
	n := e.snap.n
	order := allStarts(n)
	if n <= allStartsLimit {
		return order
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(e.snap.degree(b), e.snap.degree(a))
	})
	k := max(1, min(2*e.opts.Workers, n/2))

	return order[:k]
}
