// SPDX-License-Identifier: MIT
//
// api.go - the BuildGraph orchestrator and the Constructor contract.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors emit edges in a stable, documented order and never panic.
//   - Weights come from cfg.weightFn(cfg.rng), one draw per emitted edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/longpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. It validates its parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped with "BuildGraph: %w" and returned;
// no partial graph is returned.
//
// Complexity: O(len(bopts)) plus the sum of constructor costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge draws one weight and inserts u—v, wrapping failures with method context.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v core.Vertex) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
