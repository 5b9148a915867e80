// Package knapsack selects front-page publications with a 0/1 knapsack DP.
//
// Each Item has a Benefit and a Size; Select returns the subset with maximum
// total benefit whose total size fits the page capacity, in input order.
//
// Memory Modes:
//   - StrategyTwoRow (default): two benefit rows plus one taken bit per
//     (item, capacity) cell. Memory O(W + n·W/64).
//   - StrategyTable: the full (n+1)×(W+1) table. Memory O(n·W).
//
// Both run in O(n·W) time and return the same selection: inclusion needs a
// strict improvement, so ties keep an item out.
//
// Errors: ErrNegativeCapacity, ErrInvalidSize, ErrNegativeBenefit,
// ErrUnknownStrategy.
package knapsack
