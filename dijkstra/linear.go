// File: linear.go
// Role: O(V²) selection strategy. Kept as a reference for the heap strategy.
// Determinism:
//   - Ties are broken by the lowest vertex ID.

package dijkstra

// runLinear finalizes, each round, the unvisited vertex with the smallest finite
// distance, until none is left or the cap is exceeded.
func (r *runner) runLinear() {
	ids := r.g.VertexIDs()
	for {
		u, best := int64(0), Infinity
		found := false
		for _, id := range ids {
			if r.visited[id] {
				continue
			}
			if d := r.dist[id]; d < best {
				u, best, found = id, d, true
			}
		}
		if !found || best > r.options.MaxDistance {
			return
		}
		r.visited[u] = true
		r.relax(u, nil)
	}
}
