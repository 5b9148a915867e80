// Package bfs provides breadth-first search over any Adjacency, returning
// hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Walk a *core.Graph (outgoing edges only) or a *core.UndirectedView
//     (both directions), whichever the caller needs.
//   - Optional hook (OnVisit), depth limit and neighbor filter.
//
// Determinism
//
//	Neighbors are enqueued in the order the Adjacency returns them:
//	insertion order for core.Graph, ascending ID for core.UndirectedView.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(core.Undirected(g, nil), start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	)
//
// Errors
//
//   - ErrGraphNil             nil adjacency.
//   - ErrStartVertexNotFound  start is not a vertex.
//   - ErrOptionViolation      negative MaxDepth.
//   - Wrapped OnVisit errors and ctx.Err().
package bfs
