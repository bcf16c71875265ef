// Package longestpath - unified dispatcher.
//
// Solve is the canonical entry point: it prefetches the graph once, classifies
// it, resolves Auto through Select (unless WithStrategy forces a choice), runs
// the chosen strategy, validates the result against the graph, logs through the
// context logger and reports telemetry to the configured Recorder.

package longestpath

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/ctxlog"
)

// Solve status labels passed to Recorder.RecordSolve.
const (
	StatusOK          = "ok"
	StatusInterrupted = "interrupted"
	StatusFailed      = "failed"
)

// Solve finds a maximum-weight simple path of g with the configured strategy.
//
// Every call gets a random run id that is attached to all of its log lines.
// On interruption the best partial result is returned along with an error
// matching ErrSearchInterrupted; any other error comes with a zero-path result.
//
// Errors: ErrGraphNil, ErrBadWorkerCount, ErrUnsupportedStrategy,
// ErrAllWorkersFailed, ErrSearchInterrupted, ErrInvalidPath.
func Solve(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	log := ctxlog.FromContext(ctx).With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, log)

	snap := newSnapshot(g)
	class := Classify(snap.n, snap.m)
	o.Recorder.RecordClassification(class.String())

	strategy := o.Strategy
	if strategy == Auto {
		strategy = Select(snap.n, class)
	}
	log.Debug("solve start",
		"vertices", snap.n,
		"edges", snap.m,
		"class", class.String(),
		"requested", o.Strategy.String(),
		"strategy", strategy.String(),
	)

	start := time.Now()
	var res Result
	switch strategy {
	case Exhaustive:
		res, err = exhaustive(ctx, snap)
	case BoundedParallel:
		e := &boundedEngine{snap: snap, opts: o}
		res, err = e.search(ctx)
	case Adaptive:
		res, err = adaptive(ctx, g, snap, o)
	}
	elapsed := time.Since(start)
	res.Strategy = strategy
	res.Class = class

	status := StatusOK
	switch {
	case err == nil:
	case errors.Is(err, ErrSearchInterrupted):
		status = StatusInterrupted
		log.Warn("search interrupted", "err", err, "partial", res.String())
	default:
		status = StatusFailed
		log.Warn("solve failed", "err", err)
	}
	if status != StatusFailed {
		if verr := ValidateResult(g, res); verr != nil {
			status = StatusFailed
			err = errors.Join(err, verr)
			res = Result{Strategy: strategy, Class: class, Stats: res.Stats}
		}
	}
	o.Recorder.RecordSolve(strategy.String(), status, elapsed, res.Stats.Expanded, res.Stats.Pruned)
	log.Debug("solve done",
		"status", status,
		"elapsed", elapsed,
		"distance", res.Distance,
		"length", len(res.Path),
		"expanded", res.Stats.Expanded,
		"pruned", res.Stats.Pruned,
		"fallback", res.Stats.Fallback,
	)

	return res, err
}
