// File: search.go
// Role: k-combination backtracking over repair candidates.

package connectivity

import (
	"context"

	"github.com/katalvlaran/redsocial/core"
)

// searcher holds the state shared by one SimulateBlock search.
type searcher struct {
	ctx        context.Context
	base       *core.UndirectedView
	candidates []core.Edge
	picked     []int
}

// search returns the first k-combination that reconnects base, nil if none
// does, or ctx.Err() once the context is done.
func (s *searcher) search(k int) ([]core.Edge, error) {
	s.picked = s.picked[:0]

	return s.extend(0, k)
}

func (s *searcher) extend(start, k int) ([]core.Edge, error) {
	if len(s.picked) == k {
		if err := s.ctx.Err(); err != nil {
			return nil, err
		}
		if s.restores() {
			out := make([]core.Edge, 0, k)
			for _, i := range s.picked {
				out = append(out, s.candidates[i])
			}

			return out, nil
		}

		return nil, nil
	}
	// leave room for the remaining picks
	for i := start; i <= len(s.candidates)-(k-len(s.picked)); i++ {
		s.picked = append(s.picked, i)
		found, err := s.extend(i+1, k)
		s.picked = s.picked[:len(s.picked)-1]
		if err != nil || found != nil {
			return found, err
		}
	}

	return nil, nil
}

// restores applies the picked candidates to a copy of base and checks it.
func (s *searcher) restores() bool {
	view := s.base.Clone()
	for _, i := range s.picked {
		c := s.candidates[i]
		view.Connect(c.From.ID, c.To.ID)
	}

	return IsConnected(view)
}
