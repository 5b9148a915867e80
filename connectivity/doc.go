// Package connectivity simulates blocking one connection of the social
// graph and proposes the fewest new connections that reconnect it.
//
// Connectivity is undirected: both directions of every surviving edge count.
// The check is a BFS from the lowest-ID vertex over a core.UndirectedView that
// leaves out the blocked pair; the stored graph is never touched.
//
// The repair search is exhaustive by size and grows binomially with the
// candidate count. Bound it with WithMaxCandidates or cancel it through
// WithContext.
//
// Errors: ErrNilGraph, ErrEdgeNotFound, ErrTooManyCandidates, ctx.Err().
package connectivity
