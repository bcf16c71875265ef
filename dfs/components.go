package dfs

import (
	"context"

	"github.com/katalvlaran/longpath/core"
)

// Components partitions g into connected components.
//
// Components appear in ascending order of their smallest vertex and members of
// each component are listed in ascending order. Vertices whose only edges are
// self-loops form singleton components.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) ([][]core.Vertex, error) {
	return ComponentsContext(context.Background(), g)
}

// ComponentsContext is Components with cancellation.
func ComponentsContext(ctx context.Context, g *core.Graph) ([][]core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	res, err := DFS(g, 0, WithContext(ctx), WithFullTraversal())
	if err != nil {
		return nil, err
	}

	// Roots were started in ascending order, so their index is the component index.
	slot := make(map[core.Vertex]int, len(res.Visited))
	for i, r := range res.Roots {
		slot[r] = i
	}
	comps := make([][]core.Vertex, len(res.Roots))
	for _, v := range g.Vertices() {
		i := rootSlot(res.Parent, slot, v)
		comps[i] = append(comps[i], v)
	}

	return comps, nil
}

// rootSlot follows parent links up to a tree root and memoizes the slot of
// every vertex on the way.
func rootSlot(parent map[core.Vertex]core.Vertex, slot map[core.Vertex]int, v core.Vertex) int {
	var chain []core.Vertex
	cur := v
	for {
		if i, ok := slot[cur]; ok {
			for _, c := range chain {
				slot[c] = i
			}

			return i
		}
		chain = append(chain, cur)
		cur = parent[cur]
	}
}
