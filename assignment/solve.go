// File: solve.go
// Role: bitmask DP over administrator subsets.
// Determinism:
//   - Masks are visited in increasing numeric order and administrators in
//     index order; only a strict improvement replaces a stored choice.

package assignment

import (
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"
)

const unset = math.MaxInt

// Solve assigns one administrator to each group, minimizing the total
// inefficiency Σ (100 - Efficiency[admin][group]).
//
// dp[mask] is the cheapest way to fill groups 0..k-1, k = popcount(mask),
// with exactly the administrators whose bits are set in mask; choice[mask]
// is the administrator that filled group k-1 on that route.
//
//	dp[0] = 0
//	dp[mask | 1<<i] = min(dp[mask | 1<<i], dp[mask] + cost(i, popcount(mask)))
//
// The assignment is rebuilt from the full mask down to 0.
//
// n = 0 yields an empty assignment with cost 0.
//
// Time: O(n²·2ⁿ). Memory: O(2ⁿ).
func Solve(groups []Group, admins []Administrator) (*Result, error) {
	n := len(groups)
	if len(admins) != n {
		return nil, errors.Wrapf(ErrCountMismatch, "%d groups, %d administrators", n, len(admins))
	}
	if n > MaxSize {
		return nil, errors.Wrapf(ErrTooLarge, "%d > %d", n, MaxSize)
	}
	for i, a := range admins {
		if len(a.Efficiency) < n {
			return nil, errors.Wrapf(ErrShortEfficiency, "administrator %d has %d entries, want %d", i, len(a.Efficiency), n)
		}
		for j := 0; j < n; j++ {
			if e := a.Efficiency[j]; e < 0 || e > MaxEfficiency {
				return nil, errors.Wrapf(ErrEfficiencyRange, "administrator %d group %d: %d", i, j, e)
			}
		}
	}

	res := &Result{Groups: groups, Administrators: admins, Assignment: make([]int, n)}
	if n == 0 {
		return res, nil
	}

	full := 1<<n - 1
	dp := make([]int, full+1)
	choice := make([]uint8, full+1)
	for mask := range dp {
		dp[mask] = unset
	}
	dp[0] = 0

	for mask := 0; mask < full; mask++ {
		if dp[mask] == unset {
			continue
		}
		group := bits.OnesCount(uint(mask))
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				continue
			}
			next := mask | 1<<i
			cost := dp[mask] + MaxEfficiency - admins[i].Efficiency[group]
			if cost < dp[next] {
				dp[next] = cost
				choice[next] = uint8(i)
			}
		}
	}

	for mask, group := full, n-1; group >= 0; group-- {
		admin := int(choice[mask])
		res.Assignment[group] = admin
		mask &^= 1 << admin
	}
	res.TotalCost = dp[full]

	return res, nil
}
