// File: kruskal.go
// Role: Kruskal's minimum spanning tree / forest.
// Determinism:
//   - Edges are stable-sorted by weight; equal weights keep insertion order,
//     so the accepted edge set is reproducible.

package mst

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/redsocial/core"
)

// Kruskal returns a new Graph holding every vertex of g and a minimum-weight
// set of edges that connects each component of g without cycles.
//
// Edge direction is ignored: a connection A→B joins A and B for the purpose
// of spanning. Accepted edges are copied as stored (same From, To, Weight).
//
// Steps:
//  1. Collect edges in insertion order, skipping self-loops.
//  2. Stable-sort by ascending weight.
//  3. Accept an edge iff its endpoints lie in different components; merge them.
//  4. Stop after |V|-1 accepted edges.
//
// A disconnected g yields a spanning forest, not an error. g is never mutated.
//
// Complexity: O(E log E) with MethodUnionFind. Memory: O(V + E).
func Kruskal(g *core.Graph, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var tracker components
	ids := g.VertexIDs()
	switch cfg.Method {
	case MethodUnionFind:
		tracker = NewDisjointSet(ids)
	case MethodRelabel:
		tracker = newRelabel(ids)
	default:
		return nil, errors.Wrapf(ErrUnknownMethod, "%d", cfg.Method)
	}

	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From.ID == e.To.ID {
			continue
		}
		edges = append(edges, e)
	}
	slices.SortStableFunc(edges, core.ByWeight)

	out := g.CloneEmpty()
	want := len(ids) - 1
	accepted := 0
	for _, e := range edges {
		if accepted >= want {
			break
		}
		if tracker.Union(e.From.ID, e.To.ID) {
			out.AddEdge(e.From, e.To, e.Weight)
			accepted++
		}
	}

	return out, nil
}

// Weight is the total weight of a spanning tree returned by Kruskal.
func Weight(tree *core.Graph) int64 {
	if tree == nil {
		return 0
	}

	return tree.TotalWeight()
}

// components is what Kruskal needs from a component tracker.
type components interface {
	// Union merges the components of a and b, reporting whether they differed.
	Union(a, b int64) bool
}
