// File: methods.go
// Role: Graph mutation (AddVertex/AddEdge) and read-only queries.
// Determinism:
//   - Vertices() and VertexIDs() are sorted by ID asc.
//   - Edges() and Neighbors() keep insertion order.

package core

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// AddVertex inserts v into the Graph.
// If a vertex with the same ID already exists, this is a no-op (the first label wins).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v Vertex) {
	if _, exists := g.vertices[v.ID]; exists {
		return
	}
	g.vertices[v.ID] = v
	g.ensureAdj(v.ID)
}

// AddEdge appends a directed edge from→to with the given weight to the edge
// list and to from's adjacency list, and returns it.
//
// Endpoints need not have been added first: unknown endpoints are registered
// so that the vertex-set and adjacency invariants keep holding. Well-formed
// callers add vertices before their connections.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to Vertex, weight int64) Edge {
	g.AddVertex(from)
	g.AddVertex(to)

	// Use the stored vertices so edges always carry the canonical labels.
	e := Edge{From: g.vertices[from.ID], To: g.vertices[to.ID], Weight: weight}
	g.edges = append(g.edges, e)
	g.adjacency[from.ID] = append(g.adjacency[from.ID], e)

	return e
}

// ensureAdj guarantees an adjacency entry for id.
func (g *Graph) ensureAdj(id int64) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make([]Edge, 0)
	}
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex stored under id.
func (g *Graph) Vertex(id int64) (Vertex, bool) {
	v, ok := g.vertices[id]

	return v, ok
}

// Lookup is Vertex with an error: ErrVertexNotFound when id is unknown.
func (g *Graph) Lookup(id int64) (Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, errors.Wrapf(ErrVertexNotFound, "id %d", id)
	}

	return v, nil
}

// EdgeBetween returns the first stored edge from→to, or ErrEdgeNotFound.
// Complexity: O(deg(from)).
func (g *Graph) EdgeBetween(from, to int64) (Edge, error) {
	for _, e := range g.adjacency[from] {
		if e.To.ID == to {
			return e, nil
		}
	}

	return Edge{}, errors.Wrapf(ErrEdgeNotFound, "%d -> %d", from, to)
}

// Vertices returns every vertex sorted by ID.
// Complexity: O(V log V).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b Vertex) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return out
}

// VertexIDs returns every vertex ID sorted ascending.
func (g *Graph) VertexIDs() []int64 {
	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// Neighbors returns the outgoing edges of id, in insertion order.
// An unknown or isolated vertex yields an empty, non-nil slice.
func (g *Graph) Neighbors(id int64) []Edge {
	adj, ok := g.adjacency[id]
	if !ok {
		return []Edge{}
	}

	return slices.Clone(adj)
}

// NeighborIDs returns the targets of id's outgoing edges, in insertion order.
// Parallel edges yield repeated IDs.
func (g *Graph) NeighborIDs(id int64) []int64 {
	adj := g.adjacency[id]
	out := make([]int64, 0, len(adj))
	for _, e := range adj {
		out = append(out, e.To.ID)
	}

	return out
}

// HasEdge reports whether some edge from→to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int64) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of the first edge from→to found in from's
// adjacency list, or false when there is none.
// Complexity: O(deg(from)).
func (g *Graph) Weight(from, to int64) (int64, bool) {
	for _, e := range g.adjacency[from] {
		if e.To.ID == to {
			return e.Weight, true
		}
	}

	return 0, false
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// TotalWeight sums every edge weight.
func (g *Graph) TotalWeight() int64 {
	var total int64
	for _, e := range g.edges {
		total += e.Weight
	}

	return total
}

// CloneEmpty returns a new Graph holding the same vertices and no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	out := NewGraph()
	for id, v := range g.vertices {
		out.vertices[id] = v
		out.adjacency[id] = make([]Edge, 0)
	}

	return out
}

// Symmetrize returns a new Graph that holds every edge of g plus its reverse
// B→A whenever no B→A edge exists yet. Use it to feed algorithms that read
// connections as undirected.
// Complexity: O(V + E·deg).
func Symmetrize(g *Graph) *Graph {
	out := g.CloneEmpty()
	for _, e := range g.edges {
		out.AddEdge(e.From, e.To, e.Weight)
	}
	for _, e := range g.edges {
		if !out.HasEdge(e.To.ID, e.From.ID) {
			out.AddEdge(e.To, e.From, e.Weight)
		}
	}

	return out
}

// String lists every edge and the total weight, one edge per line.
func (g *Graph) String() string {
	var sb strings.Builder
	for _, e := range g.edges {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("total weight: ")
	sb.WriteString(strconv.FormatInt(g.TotalWeight(), 10))

	return sb.String()
}
