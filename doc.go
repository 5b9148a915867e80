// Package redsocial is a small toolkit for analysing a social network held in
// memory: users are vertices, connections are directed weighted edges.
//
// What's inside:
//
//	core/          Graph, Vertex, Edge and the non-mutating UndirectedView
//	bfs/           breadth-first walker over directed or undirected adjacency
//	dijkstra/      shortest distances and routes from one user (heap or linear scan)
//	mst/           Kruskal spanning tree/forest (union-find or relabelling)
//	knapsack/      0/1 front-page selection (full table or two rows)
//	connectivity/  block a connection, count components, find minimal repairs
//	assignment/    exact group↔administrator assignment over subsets
//	builder/       deterministic graph fixtures and random networks
//	dataset/       JSON/TOML/YAML datasets and adapters to every algorithm
//	cmd/redsocial  command line front end
//
// Quick ASCII example:
//
//	    Ana ──1── Beto
//	     │          │
//	     4          2
//	     │          │
//	    Dani ──3── Caro
//
// The spanning tree keeps 1, 2 and 3 (total weight 6); Dijkstra from Ana
// reaches Caro at distance 3 through Beto.
//
// Graphs carry no locks. Build one in a single goroutine, then share it
// read-only; every algorithm leaves its input untouched.
//
//	go install github.com/katalvlaran/redsocial/cmd/redsocial@latest
package redsocial
