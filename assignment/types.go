// File: types.go
// Role: problem and result types, sentinel errors.

package assignment

import (
	"github.com/cockroachdb/errors"
)

// MaxSize bounds n: the DP allocates 2ⁿ states.
const MaxSize = 20

// MaxEfficiency is the best possible efficiency; cost = MaxEfficiency - efficiency.
const MaxEfficiency = 100

// Sentinel errors.
var (
	// ErrCountMismatch is returned when groups and administrators differ in number.
	ErrCountMismatch = errors.New("assignment: group and administrator counts differ")

	// ErrShortEfficiency is returned when an administrator has fewer
	// efficiency entries than there are groups.
	ErrShortEfficiency = errors.New("assignment: efficiency list shorter than group count")

	// ErrEfficiencyRange is returned for an efficiency outside [0,100].
	ErrEfficiencyRange = errors.New("assignment: efficiency out of range [0,100]")

	// ErrTooLarge is returned when n exceeds MaxSize.
	ErrTooLarge = errors.New("assignment: too many groups")
)

// Group is a community that needs exactly one administrator.
type Group struct {
	ID   int64
	Name string
}

// Administrator can run any group; Efficiency[j] is how well they run group j.
type Administrator struct {
	ID         int64
	Name       string
	Efficiency []int
}

// Result is an optimal bijection from groups to administrators.
type Result struct {
	Groups         []Group
	Administrators []Administrator

	// Assignment[j] is the index into Administrators chosen for group j.
	Assignment []int

	// TotalCost is Σ (100 - efficiency) over all groups.
	TotalCost int
}

// AdminFor returns the administrator assigned to group index j.
func (r *Result) AdminFor(j int) Administrator {
	return r.Administrators[r.Assignment[j]]
}

// EfficiencyFor returns the efficiency of group j's administrator on group j.
func (r *Result) EfficiencyFor(j int) int {
	return r.AdminFor(j).Efficiency[j]
}
