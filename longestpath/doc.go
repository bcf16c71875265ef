// Package longestpath searches an undirected, non-negatively weighted
// core.Graph for its maximum-weight simple path.
//
// What:
//
//   - ExhaustiveSearch: enumerates every simple path from every start. Exact.
//   - BoundedParallelSearch: branch-and-bound from curated start vertices on a
//     bounded errgroup; exact for ≤ 6 vertices thanks to an exhaustive fallback.
//   - AdaptiveSearch: classifies the graph (complete / sparse / general) and
//     routes to a greedy heaviest-edge walk, per-component sub-solves or the
//     bounded search.
//   - Select: the default size/density policy used when Strategy is Auto.
//   - Solve: dispatcher with logging, telemetry and result validation.
//
// Determinism:
//
//   - Vertices are numbered in ascending ID order and starts are tried in that
//     order; neighbours follow adjacency insertion order (the pruned search
//     tries heavier arcs first, stable on ties).
//   - A path replaces the incumbent only when strictly heavier, so the first
//     discovered optimum is kept. The parallel reduce keeps the earliest slot.
//   - An all-zero-weight graph yields an empty result.
//
// Cancellation:
//
//   - The DFS kernel polls the context every 1024 steps. An interrupted solve
//     returns its best partial result with an error matching ErrSearchInterrupted.
//
// Options:
//
//   - WithStrategy(s)     force a strategy (default Auto).
//   - WithWorkers(n)      parallel workers, 1..MaxWorkers (default 4).
//   - WithRecorder(r)     telemetry sink, e.g. a metrics.Registry.
//
// Complexity:
//
//   - Exhaustive: O(n!) worst case. Bounded: same worst case, heavily pruned.
//   - Greedy: O(n · (n + m)).
package longestpath
