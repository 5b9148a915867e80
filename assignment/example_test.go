package assignment_test

import (
	"fmt"

	"github.com/katalvlaran/redsocial/assignment"
)

// ExampleSolve assigns two administrators to two groups.
func ExampleSolve() {
	gs := []assignment.Group{{ID: 1, Name: "Go"}, {ID: 2, Name: "Chess"}}
	as := []assignment.Administrator{
		{ID: 1, Name: "Torres", Efficiency: []int{90, 60}},
		{ID: 2, Name: "Vera", Efficiency: []int{50, 85}},
	}

	res, err := assignment.Solve(gs, as)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for j, g := range res.Groups {
		fmt.Printf("%s: %s (%d)\n", g.Name, res.AdminFor(j).Name, res.EfficiencyFor(j))
	}
	fmt.Println("total inefficiency:", res.TotalCost)

	// Output:
	// Go: Torres (90)
	// Chess: Vera (85)
	// total inefficiency: 25
}
