package core_test

import (
	"fmt"

	"github.com/katalvlaran/redsocial/core"
)

// ExampleGraph demonstrates creation and directed queries.
func ExampleGraph() {
	ana := core.Vertex{ID: 1, Label: "Ana"}
	beto := core.Vertex{ID: 2, Label: "Beto"}

	g := core.NewGraph()
	g.AddVertex(ana)
	g.AddVertex(beto)
	g.AddEdge(ana, beto, 3)

	w, ok := g.Weight(ana.ID, beto.ID)
	fmt.Println(w, ok)
	fmt.Println("Beto→Ana exists?", g.HasEdge(beto.ID, ana.ID))
	fmt.Println(g)

	// Output:
	// 3 true
	// Beto→Ana exists? false
	// Ana --(3)--> Beto
	// total weight: 3
}
