// File: adaptive.go
// Role: Classify-then-dispatch heuristic strategy.
//
//   - n == 0            → empty result.
//   - n ≤ exactLimit    → exhaustive search.
//   - ClassComplete     → greedy heaviest-edge walk from every vertex.
//   - ClassSparse       → split into connected components; each component is
//     solved exhaustively when it has ≤ sequentialLimit vertices, greedily
//     otherwise; the heaviest component result wins (earliest on ties).
//   - ClassGeneral      → bounded parallel search.

package longestpath

import (
	"context"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/ctxlog"
	"github.com/katalvlaran/longpath/dfs"
)

// AdaptiveSearch classifies g and routes to the matching sub-strategy.
// Results on complete and sparse graphs with more than six vertices are
// heuristic and may fall short of the optimum.
func AdaptiveSearch(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
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

	return adaptive(ctx, g, newSnapshot(g), o)
}

func adaptive(ctx context.Context, g *core.Graph, snap *snapshot, o Options) (Result, error) {
	class := Classify(snap.n, snap.m)
	log := ctxlog.FromContext(ctx)

	var (
		res Result
		err error
	)
	switch {
	case snap.n == 0:
	case snap.n <= exactLimit:
		log.Debug("adaptive route", "route", "exhaustive", "class", class.String())
		res, err = exhaustive(ctx, snap)
	case class == ClassComplete:
		log.Debug("adaptive route", "route", "greedy", "class", class.String())
		best, stats, gerr := greedyBest(ctx, snap)
		res = snap.toResult(best)
		res.Stats = stats
		err = interruption(gerr)
	case class == ClassSparse:
		log.Debug("adaptive route", "route", "components", "class", class.String())
		res, err = components(ctx, g)
	default:
		log.Debug("adaptive route", "route", "bounded", "class", class.String())
		e := &boundedEngine{snap: snap, opts: o}
		res, err = e.search(ctx)
	}
	res.Strategy = Adaptive
	res.Class = class

	return res, err
}

// components solves every connected component of g on its own.
func components(ctx context.Context, g *core.Graph) (Result, error) {
	comps, err := dfs.ComponentsContext(ctx, g)
	if err != nil {
		return Result{}, interruption(err)
	}

	var (
		best      candidate
		bestSnap  *snapshot
		stats     SearchStats
		searchErr error
	)
	for _, comp := range comps {
		keep := make(map[core.Vertex]bool, len(comp))
		for _, v := range comp {
			keep[v] = true
		}
		sub := newSnapshot(core.InducedSubgraph(g, keep))

		var (
			c  candidate
			st SearchStats
		)
		if sub.n <= sequentialLimit {
			s := newSearcher(ctx, sub, false)
			searchErr = s.runAll(allStarts(sub.n))
			c, st = s.best, s.stats
		} else {
			c, st, searchErr = greedyBest(ctx, sub)
		}
		stats.add(st)
		if c.dist > best.dist {
			best, bestSnap = c, sub
		}
		if searchErr != nil {
			break
		}
	}

	var res Result
	if bestSnap != nil {
		res = bestSnap.toResult(best)
	}
	res.Stats = stats
	if searchErr != nil {
		return res, interruption(searchErr)
	}

	return res, nil
}
