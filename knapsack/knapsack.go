// File: knapsack.go
// Role: 0/1 knapsack entry point and the full-table strategy.
// Determinism:
//   - An item is taken only on strict improvement; ties keep it out.

package knapsack

import (
	"github.com/cockroachdb/errors"
)

// Select picks the subset of items with maximum total benefit whose total
// size fits in capacity.
//
// Recurrence (best[i][w] = best benefit using the first i items within w):
//
//	best[0][w] = 0
//	best[i][w] = best[i-1][w]                                  if size_i > w
//	           = best[i-1][w-size_i] + benefit_i               if that is strictly greater
//	           = best[i-1][w]                                  otherwise
//
// Reconstruction walks from (n, capacity): item i is taken iff
// best[i][w] != best[i-1][w]. The selection keeps input order.
//
// Empty items yield an empty selection.
//
// Complexity: O(n·W) time for both strategies.
func Select(items []Item, capacity int, opts ...Option) (*Selection, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if capacity < 0 {
		return nil, errors.Wrapf(ErrNegativeCapacity, "%d", capacity)
	}
	for i, it := range items {
		if it.Size <= 0 {
			return nil, errors.Wrapf(ErrInvalidSize, "item %d size=%d", i, it.Size)
		}
		if it.Benefit < 0 {
			return nil, errors.Wrapf(ErrNegativeBenefit, "item %d benefit=%d", i, it.Benefit)
		}
	}
	if cfg.Strategy != StrategyTable && cfg.Strategy != StrategyTwoRow {
		return nil, errors.Wrapf(ErrUnknownStrategy, "%d", cfg.Strategy)
	}
	if len(items) == 0 {
		return &Selection{Indices: []int{}, Items: []Item{}}, nil
	}

	var taken []int
	if cfg.Strategy == StrategyTable {
		taken = selectTable(items, capacity)
	} else {
		taken = selectTwoRow(items, capacity)
	}

	sel := &Selection{Indices: taken, Items: make([]Item, 0, len(taken))}
	for _, i := range taken {
		sel.Items = append(sel.Items, items[i])
		sel.TotalBenefit += items[i].Benefit
		sel.TotalSize += items[i].Size
	}

	return sel, nil
}

// selectTable fills the whole (n+1)×(W+1) table and returns chosen indices ascending.
func selectTable(items []Item, capacity int) []int {
	n := len(items)
	best := make([][]int64, n+1)
	for i := range best {
		best[i] = make([]int64, capacity+1)
	}

	for i := 1; i <= n; i++ {
		it := items[i-1]
		for w := 0; w <= capacity; w++ {
			best[i][w] = best[i-1][w]
			if it.Size <= w {
				if with := best[i-1][w-it.Size] + it.Benefit; with > best[i][w] {
					best[i][w] = with
				}
			}
		}
	}

	chosen := []int{}
	w := capacity
	for i := n; i >= 1; i-- {
		if best[i][w] != best[i-1][w] {
			chosen = append(chosen, i-1)
			w -= items[i-1].Size
		}
	}

	return reverse(chosen)
}

func reverse(s []int) []int {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	return s
}
