// File: types.go
// Role: Vertex, Edge and Graph declarations, sentinel errors and the NewGraph constructor.
// Determinism:
//   - Edges keep insertion order; Vertices() is sorted by ID.
// Concurrency:
//   - None. A Graph is built by one goroutine and then shared read-only.

package core

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex is a user of the social network.
//
// Identity is the ID alone: two vertices with the same ID are the same
// vertex whatever their labels say.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID int64

	// Label is the display name. It takes no part in equality.
	Label string
}

// Same reports whether v and o denote the same vertex.
func (v Vertex) Same(o Vertex) bool { return v.ID == o.ID }

// String returns the label, or the numeric ID when the label is empty.
func (v Vertex) String() string {
	if v.Label == "" {
		return fmt.Sprintf("#%d", v.ID)
	}

	return v.Label
}

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source vertex.
	From Vertex

	// To is the destination vertex.
	To Vertex

	// Weight is the cost of the connection.
	Weight int64
}

// Equal reports whether both endpoints and the weight match.
// Labels are ignored, in line with Vertex identity.
func (e Edge) Equal(o Edge) bool {
	return e.From.ID == o.From.ID && e.To.ID == o.To.ID && e.Weight == o.Weight
}

// Connects reports whether e goes from the vertex with ID from to the vertex with ID to.
func (e Edge) Connects(from, to int64) bool {
	return e.From.ID == from && e.To.ID == to
}

// String renders the edge as "A --(w)--> B".
func (e Edge) String() string {
	return fmt.Sprintf("%s --(%d)--> %s", e.From, e.Weight, e.To)
}

// ByWeight compares two edges by weight; suitable for slices.SortStableFunc.
func ByWeight(a, b Edge) int {
	switch {
	case a.Weight < b.Weight:
		return -1
	case a.Weight > b.Weight:
		return 1
	default:
		return 0
	}
}

// Graph is the in-memory social graph.
//
// vertices holds every known vertex by ID, edges keeps every connection in
// insertion order and adjacency maps each vertex ID to its outgoing edges.
// Invariant: every endpoint of every edge is in vertices, and adjacency has an
// entry (possibly empty) for every vertex.
type Graph struct {
	vertices  map[int64]Vertex
	edges     []Edge
	adjacency map[int64][]Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[int64]Vertex),
		edges:     make([]Edge, 0),
		adjacency: make(map[int64][]Edge),
	}
}
