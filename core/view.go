// File: view.go
// Role: Non-mutating undirected adjacency view over a Graph.
// Determinism:
//   - VertexIDs and NeighborIDs are sorted by ID asc.
// Notes:
//   - Views do NOT mutate the input Graph.
//   - Both directions of every kept edge count as adjacency.

package core

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// UndirectedView is a symmetric adjacency built from a Graph snapshot.
// Each vertex ID maps to the set of IDs it touches through any kept edge,
// in either direction.
type UndirectedView struct {
	adj map[int64]mapset.Set[int64]
}

// Undirected returns the undirected view of g. Edges for which skip returns
// true are left out; a nil skip keeps every edge. The input graph is not mutated.
//
// Complexity: O(V + E).
func Undirected(g *Graph, skip func(Edge) bool) *UndirectedView {
	view := NewUndirectedView(g.VertexIDs()...)
	for _, e := range g.edges {
		if skip != nil && skip(e) {
			continue
		}
		view.Connect(e.From.ID, e.To.ID)
	}

	return view
}

// NewUndirectedView creates a view over the given vertex IDs with no adjacency.
func NewUndirectedView(ids ...int64) *UndirectedView {
	view := &UndirectedView{adj: make(map[int64]mapset.Set[int64], len(ids))}
	for _, id := range ids {
		view.adj[id] = mapset.NewThreadUnsafeSet[int64]()
	}

	return view
}

// Connect records u—v in both directions, registering unknown IDs.
// A self-loop adds nothing to connectivity and is ignored.
func (v *UndirectedView) Connect(a, b int64) {
	v.ensure(a)
	v.ensure(b)
	if a == b {
		return
	}
	v.adj[a].Add(b)
	v.adj[b].Add(a)
}

func (v *UndirectedView) ensure(id int64) {
	if _, ok := v.adj[id]; !ok {
		v.adj[id] = mapset.NewThreadUnsafeSet[int64]()
	}
}

// HasVertex reports whether id belongs to the view.
func (v *UndirectedView) HasVertex(id int64) bool {
	_, ok := v.adj[id]

	return ok
}

// Adjacent reports whether a—b is present.
func (v *UndirectedView) Adjacent(a, b int64) bool {
	s, ok := v.adj[a]

	return ok && s.Contains(b)
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
func (v *UndirectedView) NeighborIDs(id int64) []int64 {
	s, ok := v.adj[id]
	if !ok {
		return []int64{}
	}
	out := s.ToSlice()
	slices.Sort(out)

	return out
}

// VertexIDs returns every vertex ID of the view, sorted ascending.
func (v *UndirectedView) VertexIDs() []int64 {
	ids := make([]int64, 0, len(v.adj))
	for id := range v.adj {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Len returns the number of vertices in the view.
func (v *UndirectedView) Len() int { return len(v.adj) }

// Clone returns a deep copy; changes to the copy never reach v.
func (v *UndirectedView) Clone() *UndirectedView {
	out := &UndirectedView{adj: make(map[int64]mapset.Set[int64], len(v.adj))}
	for id, s := range v.adj {
		out.adj[id] = s.Clone()
	}

	return out
}
