package builder

import "github.com/katalvlaran/longpath/core"

// IDFn maps a zero-based vertex index to its vertex ID.
// It must be pure: the same index always yields the same ID.
type IDFn func(idx int) core.Vertex

// DefaultIDFn maps index i to core.Vertex(i).
func DefaultIDFn(idx int) core.Vertex {
	return core.Vertex(idx)
}

// OffsetIDFn maps index i to core.Vertex(base + i).
func OffsetIDFn(base uint64) IDFn {
	return func(idx int) core.Vertex {
		return core.Vertex(base + uint64(idx))
	}
}
