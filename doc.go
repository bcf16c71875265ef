// Package longpath finds the maximum-weight simple path of an undirected,
// non-negatively weighted graph.
//
// 🚀 What is longpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Core primitives: a thread-safe multigraph with numeric vertex ids
//		• Traversal: iterative DFS and connected components
//		• Search: exhaustive, bounded-parallel and adaptive solvers
//		• I/O: a "u,v,weight" edge-list reader and writer
//		• Fixtures: deterministic path, cycle, complete, star, wheel, grid and random graphs
//		• Telemetry: Prometheus metrics and context-carried slog logging
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        — Graph, Vertex, Edge types & thread-safe primitives
//	dfs/         — depth-first traversal and connected components
//	longestpath/ — the solvers, the strategy selector and the Solve dispatcher
//	edgelist/    — textual graph input and output
//	builder/     — fixture topologies with seeded weights
//	config/      — YAML settings with validation and env overrides
//	metrics/     — Prometheus registry implementing longestpath.Recorder
//	ctxlog/      — *slog.Logger carried through context.Context
//	cmd/longpath — the command-line solver, bench and generate tools
//
// Quick ASCII example:
//
//	    1──8.54──2
//	    │ ╲      │
//	   1.4  2.19 3.11
//	    │      ╲ │
//	    4──4.0───3
//
//	longest simple path: 1 → 2 → 3 → 4, distance 15.65
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdge(1, 2, 8.54)
//	_ = g.AddEdge(2, 3, 3.11)
//	_ = g.AddEdge(3, 1, 2.19)
//	_ = g.AddEdge(3, 4, 4.0)
//	_ = g.AddEdge(4, 1, 1.4)
//	res, err := longestpath.Solve(ctx, g)
//	// res.Path == [1 2 3 4], res.Distance == 15.65
package longpath
