package assignment_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/redsocial/assignment"
)

func BenchmarkSolve_12(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	eff := make([][]int, 12)
	for i := range eff {
		eff[i] = make([]int, 12)
		for j := range eff[i] {
			eff[i][j] = rng.Intn(101)
		}
	}
	gs, as := groups(12), admins(eff...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = assignment.Solve(gs, as)
	}
}
