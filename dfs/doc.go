// Package dfs implements depth-first traversal and connected-component
// partitioning on an undirected core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every component (WithFullTraversal)
//   - Components: connected components of the graph, used by the longest
//     path solver to split sparse inputs into independent sub-problems.
//   - HasCycle: forest test by edge counting over the components.
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects post-order, Depth, Parent, Visited maps and Roots
//
// Determinism:
//
//   - Neighbors are explored in adjacency insertion order.
//   - Forest roots are taken in ascending vertex order.
//   - Self-loops never produce a recursive step.
//
// Complexity:
//
//   - DFS:         Time O(V+E), Memory O(V)
//   - Components:  Time O(V log V + E), Memory O(V)
//   - HasCycle:    same as Components
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
