// File: bfs.go
// Role: queue-driven walker.
// Determinism:
//   - Neighbors are enqueued in the order the Adjacency returns them.

package bfs

import (
	"context"

	"github.com/cockroachdb/errors"
)

type queueItem struct {
	id    int64
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     Adjacency
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[int64]bool
	res     *Result
}

// BFS runs breadth-first search over adj starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation or any
// error returned by the OnVisit hook.
func BFS(adj Adjacency, start int64, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !adj.HasVertex(start) {
		return nil, errors.Wrapf(ErrStartVertexNotFound, "id %d", start)
	}

	w := &walker{
		adj:     adj,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[int64]bool),
		res: &Result{
			Depth:  make(map[int64]int),
			Parent: make(map[int64]int64),
		},
	}
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

func (w *walker) enqueue(id int64, d int, parent int64, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return errors.Wrapf(err, "bfs: OnVisit at %d", item.id)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj.NeighborIDs(item.id) {
			if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			w.enqueue(nbr, next, item.id, true)
		}
	}

	return nil
}
