// File: relabel.go
// Role: naive component tracker, one label per vertex.

package mst

// relabel stores a component label per vertex. Merging rewrites the label of
// every member of the absorbed component, which costs O(V) per merge.
type relabel struct {
	label   map[int64]int64
	members map[int64][]int64
}

func newRelabel(ids []int64) *relabel {
	r := &relabel{
		label:   make(map[int64]int64, len(ids)),
		members: make(map[int64][]int64, len(ids)),
	}
	for _, id := range ids {
		r.label[id] = id
		r.members[id] = []int64{id}
	}

	return r
}

// Union absorbs b's component into a's.
func (r *relabel) Union(a, b int64) bool {
	la, lb := r.label[a], r.label[b]
	if la == lb {
		return false
	}
	for _, id := range r.members[lb] {
		r.label[id] = la
	}
	r.members[la] = append(r.members[la], r.members[lb]...)
	delete(r.members, lb)

	return true
}
