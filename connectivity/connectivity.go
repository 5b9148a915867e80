// File: connectivity.go
// Role: connectivity checks over an undirected view.

package connectivity

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/redsocial/bfs"
	"github.com/katalvlaran/redsocial/core"
)

// IsConnected reports whether every vertex of view is reachable from the
// lowest-ID vertex. An empty view is connected.
// Complexity: O(V + E).
func IsConnected(view *core.UndirectedView) bool {
	ids := view.VertexIDs()
	if len(ids) == 0 {
		return true
	}
	res, err := bfs.BFS(view, ids[0])
	if err != nil {
		return false
	}

	return len(res.Order) == len(ids)
}

// Components counts the connected components of view.
func Components(view *core.UndirectedView) int {
	seen := mapset.NewThreadUnsafeSet[int64]()
	count := 0
	for _, id := range view.VertexIDs() {
		if seen.Contains(id) {
			continue
		}
		count++
		res, err := bfs.BFS(view, id)
		if err != nil {
			continue
		}
		seen.Append(res.Order...)
	}

	return count
}
