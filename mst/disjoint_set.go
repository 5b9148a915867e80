// File: disjoint_set.go
// Role: union-find keyed by vertex ID.

package mst

// DisjointSet partitions vertex IDs into components.
// Unknown IDs passed to Find or Union are added as singletons.
type DisjointSet struct {
	parent map[int64]int64
	rank   map[int64]int
	count  int
}

// NewDisjointSet creates one singleton set per ID.
func NewDisjointSet(ids []int64) *DisjointSet {
	ds := &DisjointSet{
		parent: make(map[int64]int64, len(ids)),
		rank:   make(map[int64]int, len(ids)),
	}
	for _, id := range ids {
		ds.add(id)
	}

	return ds
}

func (ds *DisjointSet) add(id int64) {
	if _, ok := ds.parent[id]; ok {
		return
	}
	ds.parent[id] = id
	ds.rank[id] = 0
	ds.count++
}

// Find returns the representative of id's component.
// Iterative, with path halving.
func (ds *DisjointSet) Find(id int64) int64 {
	ds.add(id)
	for ds.parent[id] != id {
		ds.parent[id] = ds.parent[ds.parent[id]]
		id = ds.parent[id]
	}

	return id
}

// Union merges the components of a and b by rank.
// It reports false when they already shared a component.
func (ds *DisjointSet) Union(a, b int64) bool {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	ds.count--

	return true
}

// Count returns the number of disjoint components.
func (ds *DisjointSet) Count() int { return ds.count }
