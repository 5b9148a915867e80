// File: dijkstra.go
// Role: entry point, validation and the heap strategy.
// Determinism:
//   - dist is unique; prev may differ between strategies on equal-distance ties.

package dijkstra

import (
	"container/heap"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/redsocial/core"
)

// Dijkstra computes shortest distances from the Source vertex to every vertex
// of g, following edges in their stored direction only.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Infinity if unreachable, 0 for the source).
//   - prev: with WithReturnPath, vertex ID → predecessor on a shortest route.
//     Only reached vertices other than the source have an entry. nil otherwise.
//
// Validation order: ErrEmptySource, ErrNilGraph, ErrVertexNotFound,
// ErrUnknownStrategy, ErrNegativeWeight.
func Dijkstra(g *core.Graph, opts ...Option) (map[int64]int64, map[int64]int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, errors.Wrapf(ErrVertexNotFound, "id %d", cfg.Source)
	}
	if cfg.Strategy != StrategyHeap && cfg.Strategy != StrategyLinear {
		return nil, nil, errors.Wrapf(ErrUnknownStrategy, "%d", cfg.Strategy)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, errors.Wrapf(ErrNegativeWeight, "edge %s weight=%d", e, e.Weight)
		}
	}

	r := newRunner(g, cfg)
	if cfg.Strategy == StrategyLinear {
		r.runLinear()
	} else {
		r.runHeap()
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[int64]int64
	prev    map[int64]int64
	visited map[int64]bool
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int64]int64, n),
		prev:    make(map[int64]int64, n),
		visited: make(map[int64]bool, n),
	}
	for _, id := range g.VertexIDs() {
		r.dist[id] = Infinity
	}
	r.dist[cfg.Source] = 0

	return r
}

// runHeap runs the lazy decrease-key loop: stale entries are skipped when popped.
func (r *runner) runHeap() {
	pq := make(nodePQ, 0, len(r.dist))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: r.options.Source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id, func(id, d int64) {
			heap.Push(&pq, &nodeItem{id: id, dist: d})
		})
	}
}

// relax tries every outgoing edge of the finalized vertex u and calls push
// for each strict improvement.
func (r *runner) relax(u int64, push func(id, d int64)) {
	du := r.dist[u]
	for _, e := range r.g.Neighbors(u) {
		v := e.To.ID
		if r.visited[v] {
			continue
		}
		// saturate instead of wrapping around
		if e.Weight > Infinity-du {
			continue
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		if push != nil {
			push(v, nd)
		}
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int64
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
