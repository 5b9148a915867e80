// Package core provides the directed, weighted social Graph shared by every
// algorithm in this module.
//
// The Graph G = (V,E) stores:
//
//   - a vertex set keyed by Vertex.ID (identity is the ID, never the label);
//   - the list of all edges, in insertion order;
//   - an adjacency index mapping each vertex to its OUTGOING edges only.
//
// An edge A→B never makes A appear in B's adjacency. Algorithms that read
// connections as undirected either build an UndirectedView or work on a
// Symmetrize'd copy.
//
// Core Methods:
//
//	// Mutation (no removal exists)
//	AddVertex(v Vertex)                        // O(1), idempotent by ID
//	AddEdge(from, to Vertex, w int64) Edge     // O(1), registers unknown endpoints
//
//	// Query
//	Neighbors(id int64) []Edge                 // outgoing, insertion order
//	HasEdge(from, to int64) bool               // O(deg(from)) linear scan
//	Weight(from, to int64) (int64, bool)       // first matching target wins
//	EdgeBetween(from, to int64) (Edge, error)  // ErrEdgeNotFound
//	Vertices() []Vertex / VertexIDs() []int64  // sorted by ID
//	Edges() []Edge                             // insertion order (copy)
//
//	// Derived graphs and views (input never mutated)
//	CloneEmpty() *Graph
//	Symmetrize(g) *Graph
//	Undirected(g, skip) *UndirectedView
//
// Read methods have no side effects. The Graph carries no locks: build it in
// one goroutine, then share it read-only.
//
// Errors:
//
//	ErrVertexNotFound – Lookup of an unknown ID
//	ErrEdgeNotFound   – EdgeBetween without a matching edge
package core
