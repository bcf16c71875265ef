package longestpath

import "context"

// greedyFrom walks from start, always taking the heaviest arc to an unvisited
// vertex (first such arc in insertion order on ties), until no unvisited
// neighbour remains. visited must be all false on entry and is restored on exit.
func greedyFrom(snap *snapshot, start int, visited []bool) candidate {
	c := candidate{path: []int{start}}
	visited[start] = true
	cur := start
	for {
		next, w := -1, 0.0
		for _, a := range snap.adj[cur] {
			if visited[a.to] {
				continue
			}
			if next < 0 || a.w > w {
				next, w = a.to, a.w
			}
		}
		if next < 0 {
			break
		}
		visited[next] = true
		c.path = append(c.path, next)
		c.legs = append(c.legs, w)
		c.dist += w
		cur = next
	}
	for _, v := range c.path {
		visited[v] = false
	}

	return c
}

// greedyBest runs greedyFrom from every vertex and keeps the strictly heaviest
// walk. When that walk misses a vertex and the graph is small enough, an
// exhaustive pass replaces it if strictly heavier.
func greedyBest(ctx context.Context, snap *snapshot) (candidate, SearchStats, error) {
	var (
		best  candidate
		stats SearchStats
	)
	visited := make([]bool, snap.n)
	for start := 0; start < snap.n; start++ {
		if err := ctx.Err(); err != nil {
			return best, stats, err
		}
		c := greedyFrom(snap, start, visited)
		stats.Starts++
		stats.Expanded += int64(len(c.path))
		if c.dist > best.dist {
			best = c
		}
	}

	if len(best.path) < snap.n && snap.n <= exactLimit {
		stats.Fallback = true
		s := newSearcher(ctx, snap, false)
		err := s.runAll(allStarts(snap.n))
		stats.Expanded += s.stats.Expanded
		if s.best.dist > best.dist {
			best = s.best
		}
		if err != nil {
			return best, stats, err
		}
	}

	return best, stats, nil
}
