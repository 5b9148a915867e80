// File: types.go
// Role: Result, options and sentinel errors for the blocking simulation.

package connectivity

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/redsocial/core"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("connectivity: graph is nil")

	// ErrEdgeNotFound is returned when the blocked pair is not a stored edge.
	ErrEdgeNotFound = errors.New("connectivity: blocked edge not found")

	// ErrTooManyCandidates is returned when the repair search would exceed
	// the configured candidate cap.
	ErrTooManyCandidates = errors.New("connectivity: too many repair candidates")

	// ErrBadMaxCandidates is the panic message of WithMaxCandidates(n < 0).
	ErrBadMaxCandidates = errors.New("connectivity: MaxCandidates must be non-negative")
)

// RepairWeight is the weight given to every proposed repair edge.
const RepairWeight int64 = 1

// Result reports the network state after blocking one connection.
type Result struct {
	// Blocked is the stored edge that was removed.
	Blocked core.Edge

	// Connected is true when the remaining network is still one component.
	Connected bool

	// Components is the number of undirected components after the block.
	Components int

	// Repairs is the smallest set of new connections that reconnects the
	// network, or every candidate when no subset does. Empty when Connected.
	Repairs []core.Edge
}

// Options configures SimulateBlock.
type Options struct {
	// Ctx is checked between candidate combinations.
	Ctx context.Context

	// MaxCandidates caps the candidate list; 0 disables the cap.
	MaxCandidates int
}

// Option configures Options.
type Option func(*Options)

// WithContext sets a context for cancellation of the repair search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCandidates refuses searches with more than n candidates.
// Panics on n < 0.
func WithMaxCandidates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxCandidates.Error())
		}
		o.MaxCandidates = n
	}
}

// DefaultOptions returns a background context and no candidate cap.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}
