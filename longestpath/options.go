package longestpath

import (
	"fmt"
	"time"
)

const (
	// DefaultWorkers is the parallel worker count. Fixed, independent of CPU count.
	DefaultWorkers = 4

	// MaxWorkers caps WithWorkers.
	MaxWorkers = 256
)

// Recorder receives solve telemetry. metrics.Registry implements it.
type Recorder interface {
	RecordSolve(strategy, status string, elapsed time.Duration, expanded, pruned int64)
	RecordWorkerFailure(strategy string)
	RecordClassification(class string)
}

type nopRecorder struct{}

func (nopRecorder) RecordSolve(string, string, time.Duration, int64, int64) {}
func (nopRecorder) RecordWorkerFailure(string)                              {}
func (nopRecorder) RecordClassification(string)                             {}

// Options configures a solve.
type Options struct {
	// Strategy forces an algorithm; Auto defers to Select.
	Strategy Strategy

	// Workers bounds concurrent search goroutines in BoundedParallel.
	Workers int

	// Recorder receives telemetry; never nil after DefaultOptions.
	Recorder Recorder
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Auto strategy, DefaultWorkers and a no-op Recorder.
func DefaultOptions() Options {
	return Options{
		Strategy: Auto,
		Workers:  DefaultWorkers,
		Recorder: nopRecorder{},
	}
}

// WithStrategy overrides the selector.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithWorkers sets the parallel worker count. Values outside [1, MaxWorkers]
// are rejected with ErrBadWorkerCount when the solve starts.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithRecorder installs a telemetry sink. A nil recorder is ignored.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Workers < 1 || o.Workers > MaxWorkers {
		return o, fmt.Errorf("%w: %d", ErrBadWorkerCount, o.Workers)
	}
	switch o.Strategy {
	case Auto, Exhaustive, BoundedParallel, Adaptive:
	default:
		return o, fmt.Errorf("%w: %v", ErrUnsupportedStrategy, o.Strategy)
	}

	return o, nil
}
