package mst_test

import (
	"testing"

	"github.com/katalvlaran/redsocial/builder"
	"github.com/katalvlaran/redsocial/mst"
)

func benchmarkMethod(b *testing.B, m mst.Method) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(11), builder.WithSymmetric()}, builder.RandomSparse(400, 0.05))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Kruskal(g, mst.WithMethod(m))
	}
}

func BenchmarkKruskal_UnionFind(b *testing.B) { benchmarkMethod(b, mst.MethodUnionFind) }
func BenchmarkKruskal_Relabel(b *testing.B)   { benchmarkMethod(b, mst.MethodRelabel) }
