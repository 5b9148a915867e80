// Package assignment pairs group administrators with groups so that the
// total inefficiency is minimal.
//
// Administrator i running group j costs 100 - Efficiency[j]. Solve runs an
// exact bitmask DP over administrator subsets, filling groups in index order;
// it is exponential in n and refuses n > MaxSize.
//
// Errors: ErrCountMismatch, ErrShortEfficiency, ErrEfficiencyRange, ErrTooLarge.
package assignment
