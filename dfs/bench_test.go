package dfs_test

import (
	"testing"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on an undirected chain of 10,000 vertices.
// The graph is built once; only the traversal is timed.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkComponents_Forest measures component splitting over 100 disjoint chains.
func BenchmarkComponents_Forest(b *testing.B) {
	g := buildChain(2)
	for c := 1; c < 100; c++ {
		base := c * 100
		for i := 0; i < 99; i++ {
			_ = g.AddEdge(core.Vertex(base+i), core.Vertex(base+i+1), 1)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Components(g)
	}
}
