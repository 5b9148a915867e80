// File: block.go
// Role: blocked-edge simulation and the minimum repair search.
// Determinism:
//   - Candidates are ordered by (u.ID, v.ID) ascending; combinations are
//     tried in lexicographic index order, so the first hit is reproducible.

package connectivity

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/redsocial/core"
)

// SimulateBlock removes every stored edge from blocked.From to blocked.To
// (weight is ignored) and checks whether the network, read as undirected,
// stays connected. If not, it searches for the fewest new connections that
// reconnect it.
//
// Candidates are the pairs (u, v), u.ID < v.ID, with no surviving connection
// in either direction. Sizes k = 1, 2, … are tried in order and, for each k,
// combinations of candidates in candidate order; the first combination that
// reconnects the network wins. If none does, every candidate is returned.
//
// The graph is never mutated.
//
// Complexity: O(V + E) for the check; the search is O(C(c, k)·(V + E)) for
// c candidates and answer size k.
func SimulateBlock(g *core.Graph, blocked core.Edge, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	stored, err := g.EdgeBetween(blocked.From.ID, blocked.To.ID)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "block %d -> %d", blocked.From.ID, blocked.To.ID), ErrEdgeNotFound)
	}

	base := core.Undirected(g, func(e core.Edge) bool {
		return e.Connects(blocked.From.ID, blocked.To.ID)
	})
	res := &Result{
		Blocked:    stored,
		Components: Components(base),
		Repairs:    []core.Edge{},
	}
	if res.Components <= 1 {
		res.Connected = true

		return res, nil
	}

	candidates := repairCandidates(g, base)
	if cfg.MaxCandidates > 0 && len(candidates) > cfg.MaxCandidates {
		return nil, errors.Wrapf(ErrTooManyCandidates, "%d > %d", len(candidates), cfg.MaxCandidates)
	}

	s := &searcher{ctx: cfg.Ctx, base: base, candidates: candidates}
	// fewer than components-1 edges can never join every component
	for k := max(1, res.Components-1); k <= len(candidates); k++ {
		found, err := s.search(k)
		if err != nil {
			return nil, err
		}
		if found != nil {
			res.Repairs = found

			return res, nil
		}
	}
	res.Repairs = candidates

	return res, nil
}

// repairCandidates lists every unconnected pair u.ID < v.ID as a weight-1 edge.
func repairCandidates(g *core.Graph, view *core.UndirectedView) []core.Edge {
	vertices := g.Vertices()
	out := make([]core.Edge, 0)
	for i, u := range vertices {
		for _, v := range vertices[i+1:] {
			if view.Adjacent(u.ID, v.ID) {
				continue
			}
			out = append(out, core.Edge{From: u, To: v, Weight: RepairWeight})
		}
	}

	return out
}
