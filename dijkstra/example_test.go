package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/redsocial/core"
	"github.com/katalvlaran/redsocial/dijkstra"
)

// ExampleDijkstra finds the cheapest introduction chain between two users.
func ExampleDijkstra() {
	ana := core.Vertex{ID: 1, Label: "Ana"}
	beto := core.Vertex{ID: 2, Label: "Beto"}
	caro := core.Vertex{ID: 3, Label: "Caro"}

	g := core.NewGraph()
	g.AddEdge(ana, beto, 4)
	g.AddEdge(beto, caro, 1)
	g.AddEdge(ana, caro, 7)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(ana.ID), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	route, _ := dijkstra.PathTo(prev, ana.ID, caro.ID)
	fmt.Println(dist[caro.ID], route)
	fmt.Println(dist[ana.ID], dist[beto.ID])

	// Output:
	// 5 [1 2 3]
	// 0 4
}
