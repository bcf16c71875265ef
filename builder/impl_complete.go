// SPDX-License-Identifier: MIT
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices; K_1 has no edge to carry its vertex).
//   - Emits each unordered pair {i,j}, i<j, exactly once in lexicographic order.
//
// Complexity: O(n²) time, O(n) extra space for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := make([]core.Vertex, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
