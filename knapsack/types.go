// File: types.go
// Role: Item/Selection types, strategies, options and sentinel errors.

package knapsack

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors.
var (
	// ErrNegativeCapacity is returned for capacity < 0.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrInvalidSize is returned for an item whose size is not positive.
	ErrInvalidSize = errors.New("knapsack: item size must be positive")

	// ErrNegativeBenefit is returned for an item with benefit < 0.
	ErrNegativeBenefit = errors.New("knapsack: item benefit must be non-negative")

	// ErrUnknownStrategy is returned for a Strategy outside the declared set.
	ErrUnknownStrategy = errors.New("knapsack: unknown strategy")
)

// Item is one candidate for the front page.
type Item struct {
	Benefit int64
	Size    int
}

// Selection is the chosen subsequence of the input, in input order.
type Selection struct {
	// Indices are positions in the input slice, ascending.
	Indices []int

	// Items are the selected items, parallel to Indices.
	Items []Item

	TotalBenefit int64
	TotalSize    int
}

// Strategy selects the DP memory layout.
type Strategy int

const (
	// StrategyTwoRow keeps two benefit rows plus one taken-bit row per item.
	// Memory O(W + n·W/64).
	StrategyTwoRow Strategy = iota

	// StrategyTable keeps the full (n+1)×(W+1) benefit table. Memory O(n·W).
	StrategyTable
)

// String returns the CLI name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyTwoRow:
		return "two-row"
	case StrategyTable:
		return "table"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a CLI name back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "two-row", "":
		return StrategyTwoRow, nil
	case "table":
		return StrategyTable, nil
	default:
		return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}
}

// Options configures Select.
type Options struct {
	Strategy Strategy
}

// Option configures Options.
type Option func(*Options)

// WithStrategy sets the DP memory layout.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns StrategyTwoRow.
func DefaultOptions() Options {
	return Options{Strategy: StrategyTwoRow}
}
