// Package builder produces deterministic core.Graph fixtures from classic
// topologies: Path, Cycle, Complete, Star, Wheel, Grid and RandomSparse.
//
// A fixture is assembled by BuildGraph from one or more Constructor values
// applied in order to a fresh graph:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//		builder.Complete(6),
//	)
//
// Configuration:
//
//   - IDs: vertex index i maps to core.Vertex(i + offset); WithIDOffset sets
//     the offset and WithIDScheme replaces the mapping entirely.
//   - Weights: WithWeightFn, WithConstantWeight, WithUniformWeight. The default
//     is DefaultEdgeWeight on every edge.
//   - Randomness: WithSeed or WithRand. RandomSparse with 0 < p < 1 requires it;
//     weight functions fall back to DefaultEdgeWeight without it.
//
// Determinism: equal options, seed and constructor order produce identical
// graphs, including edge insertion order.
//
// Errors: constructors return ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource or ErrConstructFailed wrapped with the method name.
// Option constructors panic on meaningless input such as a nil function.
package builder
