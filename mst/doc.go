// Package mst computes minimum spanning trees of the social graph with
// Kruskal's algorithm.
//
// The graph is read as undirected for spanning purposes: an edge A→B joins A
// and B. The result is a new *core.Graph with every original vertex and the
// accepted edges; a disconnected input gives a spanning forest.
//
// Two component trackers back the same acceptance rule and yield the same
// total weight:
//
//	MethodUnionFind (default)  DisjointSet, near-constant Find/Union
//	MethodRelabel              label map rewritten on each merge, O(V) per merge
//
// DisjointSet is exported for reuse.
//
// Errors: ErrNilGraph, ErrUnknownMethod.
package mst
