// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// are safe and every entry appears.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	errs := make([]error, num)
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs[id] = g.AddEdge(0, core.Vertex(id+1), float64(id))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Len(t, g.Neighbors(0), num)
	assert.Equal(t, num, g.EdgeCount())
	assert.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentReaders hammers every read method while a single writer is
// still appending, to surface data races under -race.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))

	const readers = 16
	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(readers + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = g.AddEdge(core.Vertex(i%7), core.Vertex(i%11), float64(i))
		}
	}()
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				_ = g.Neighbors(1)
				_ = g.Vertices()
				_ = g.Stats()
				_ = g.Edges()
				_ = g.AdjacencySnapshot()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, rounds+1, g.EdgeCount())
}
