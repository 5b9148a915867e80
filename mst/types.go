// File: types.go
// Role: sentinel errors, methods and functional options for spanning trees.

package mst

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrUnknownMethod is returned for a Method outside the declared set.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// Method selects how Kruskal tracks components.
type Method int

const (
	// MethodUnionFind uses DisjointSet (path compression, union by rank).
	// O(E log E) overall.
	MethodUnionFind Method = iota

	// MethodRelabel keeps one component label per vertex and relabels every
	// member of the absorbed component on each merge. O(E log E + V²).
	MethodRelabel
)

// String returns the CLI name of the method.
func (m Method) String() string {
	switch m {
	case MethodUnionFind:
		return "union-find"
	case MethodRelabel:
		return "relabel"
	default:
		return "unknown"
	}
}

// ParseMethod maps a CLI name back to a Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "union-find", "":
		return MethodUnionFind, nil
	case "relabel":
		return MethodRelabel, nil
	default:
		return 0, errors.Wrapf(ErrUnknownMethod, "%q", name)
	}
}

// Options configures Kruskal.
type Options struct {
	// Method picks the component tracking strategy.
	Method Method
}

// Option configures Options.
type Option func(*Options)

// WithMethod sets the component tracking strategy.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions returns MethodUnionFind.
func DefaultOptions() Options {
	return Options{Method: MethodUnionFind}
}
