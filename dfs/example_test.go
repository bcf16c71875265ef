package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/dfs"
)

// ExampleDFS demonstrates a depth-first traversal (post-order) on a diamond-shaped graph.
// Graph structure:
//
//	  1
//	 / \
//	2   3
//	 \ /
//	  4
//	 / \
//	5   6
//
// Starting at 1, neighbours are explored in insertion order.
func ExampleDFS() {
	g := core.NewGraph()
	for _, e := range [][2]core.Vertex{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {4, 5}, {4, 6}} {
		_ = g.AddEdge(e[0], e[1], 1)
	}

	res, err := dfs.DFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)

	// Output:
	// [3 5 6 4 2 1]
}

// ExampleComponents splits a graph into its connected pieces.
func ExampleComponents() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(3, 4, 1)
	_ = g.AddEdge(4, 5, 1)

	comps, _ := dfs.Components(g)
	fmt.Println(comps)

	// Output:
	// [[1 2] [3 4 5]]
}

// ExampleHasCycle tells a tree from the same tree with one extra edge.
func ExampleHasCycle() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(2, 4, 1)

	tree, _ := dfs.HasCycle(g)
	_ = g.AddEdge(3, 4, 1)
	cyclic, _ := dfs.HasCycle(g)
	fmt.Println(tree, cyclic)
	// Output: false true
}
