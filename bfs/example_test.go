package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/redsocial/bfs"
	"github.com/katalvlaran/redsocial/core"
)

// ExampleBFS shows how direction changes what is reachable.
func ExampleBFS() {
	g := core.NewGraph()
	ana := core.Vertex{ID: 1, Label: "Ana"}
	beto := core.Vertex{ID: 2, Label: "Beto"}
	caro := core.Vertex{ID: 3, Label: "Caro"}
	g.AddEdge(ana, beto, 1)
	g.AddEdge(caro, beto, 1)

	directed, _ := bfs.BFS(g, ana.ID)
	fmt.Println("directed:", directed.Order)

	undirected, _ := bfs.BFS(core.Undirected(g, nil), ana.ID)
	fmt.Println("undirected:", undirected.Order)

	// Output:
	// directed: [1 2]
	// undirected: [1 2 3]
}
