// File: types.go
// Role: sentinel errors, strategies and functional options for Dijkstra.

package dijkstra

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Infinity is the distance reported for vertices the source cannot reach.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no Source option was given.
	ErrEmptySource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnknownStrategy indicates a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable is returned by PathTo when dest has no recorded route.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Strategy selects how the next vertex to finalize is found.
type Strategy int

const (
	// StrategyHeap keeps a min-heap with lazy decrease-key. O((V+E) log V).
	StrategyHeap Strategy = iota

	// StrategyLinear scans every unfinalized vertex each round. O(V²).
	StrategyLinear
)

// String returns the CLI name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a CLI name back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "heap", "":
		return StrategyHeap, nil
	case "linear":
		return StrategyLinear, nil
	default:
		return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (required; checked against the graph).
// Strategy    – vertex selection strategy (default StrategyHeap).
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – vertices farther than this stay at Infinity. Default Infinity.
type Options struct {
	Source      int64
	Strategy    Strategy
	ReturnPath  bool
	MaxDistance int64

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Must be given.
func Source(id int64) Option {
	return func(o *Options) {
		o.Source = id
		o.hasSource = true
	}
}

// WithStrategy picks the vertex selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops exploring once every remaining distance exceeds max.
// Panics on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns heap strategy, no predecessor map and no distance cap.
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyHeap,
		MaxDistance: Infinity,
	}
}
