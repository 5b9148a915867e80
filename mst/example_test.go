package mst_test

import (
	"fmt"

	"github.com/katalvlaran/redsocial/core"
	"github.com/katalvlaran/redsocial/mst"
)

// ExampleKruskal links four users at minimum total cost.
func ExampleKruskal() {
	ana := core.Vertex{ID: 1, Label: "Ana"}
	beto := core.Vertex{ID: 2, Label: "Beto"}
	caro := core.Vertex{ID: 3, Label: "Caro"}
	dani := core.Vertex{ID: 4, Label: "Dani"}

	g := core.NewGraph()
	g.AddEdge(ana, beto, 1)
	g.AddEdge(beto, caro, 2)
	g.AddEdge(caro, dani, 3)
	g.AddEdge(dani, ana, 4)

	tree, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tree)

	// Output:
	// Ana --(1)--> Beto
	// Beto --(2)--> Caro
	// Caro --(3)--> Dani
	// total weight: 6
}
