// Package dijkstra implements single-source shortest paths over the directed,
// weighted social graph.
//
// Dijkstra finalizes vertices in order of increasing distance from the source
// and relaxes their outgoing edges. Direction matters: an edge A→B lets A
// reach B, never the reverse.
//
// Strategies
//
//   - StrategyHeap (default): container/heap min-queue with lazy
//     decrease-key. Time O((V + E) log V), space O(V + E).
//   - StrategyLinear: scans all unfinalized vertices each round.
//     Time O(V²), space O(V). Produces the same dist map.
//
// Options
//
//	Source(id)           required starting vertex
//	WithStrategy(s)      heap or linear
//	WithReturnPath()     also return the predecessor map
//	WithMaxDistance(d)   stop past distance d (panics if d < 0)
//
// Errors
//
//	ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrUnknownStrategy,
//	ErrNegativeWeight (detected by an upfront O(E) scan), ErrUnreachable
//	(PathTo only).
//
// Example
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithReturnPath())
//	route, err := dijkstra.PathTo(prev, 1, 4)
package dijkstra
