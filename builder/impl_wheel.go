// SPDX-License-Identifier: MIT
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition: Wₙ = Cₙ₋₁ + hub, so n ≥ 4.
//
// Contract:
//   - The rim is Cycle(n-1) over idFn(0..n-2); the hub is idFn(n-1).
//   - Rim edges are emitted first, then spokes hub—rim[i] in increasing i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // outer cycle has size n-1 ≥ 3
)

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := cfg.idFn(n - 1)
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
