// File: adapt.go
// Role: conversions between Dataset records and algorithm inputs.

package dataset

import (
	"github.com/katalvlaran/redsocial/assignment"
	"github.com/katalvlaran/redsocial/core"
	"github.com/katalvlaran/redsocial/knapsack"
)

// Graph builds the social graph: users first, in file order, then connections.
func (ds *Dataset) Graph() *core.Graph {
	g := core.NewGraph()
	for _, u := range ds.Users {
		g.AddVertex(core.Vertex{ID: u.ID, Label: u.Name})
	}
	for _, c := range ds.Connections {
		from, _ := g.Vertex(c.From)
		to, _ := g.Vertex(c.To)
		g.AddEdge(from, to, c.Weight)
	}

	return g
}

// User looks a user up by ID.
func (ds *Dataset) User(id int64) (User, bool) {
	for _, u := range ds.Users {
		if u.ID == id {
			return u, true
		}
	}

	return User{}, false
}

// Items converts publications to knapsack items, index for index.
func Items(pubs []Publication) []knapsack.Item {
	out := make([]knapsack.Item, len(pubs))
	for i, p := range pubs {
		out[i] = knapsack.Item{Benefit: p.Benefit(), Size: p.Size}
	}

	return out
}

// Items converts every publication of ds.
func (ds *Dataset) Items() []knapsack.Item { return Items(ds.Publications) }

// AssignmentGroups converts groups for assignment.Solve.
func (ds *Dataset) AssignmentGroups() []assignment.Group {
	out := make([]assignment.Group, len(ds.Groups))
	for i, g := range ds.Groups {
		out[i] = assignment.Group{ID: g.ID, Name: g.Name}
	}

	return out
}

// AssignmentAdministrators converts administrators for assignment.Solve.
func (ds *Dataset) AssignmentAdministrators() []assignment.Administrator {
	out := make([]assignment.Administrator, len(ds.Administrators))
	for i, a := range ds.Administrators {
		out[i] = assignment.Administrator{ID: a.ID, Name: a.Name, Efficiency: a.Efficiency}
	}

	return out
}

// FromGraph turns a graph into a dataset holding its users and connections.
func FromGraph(g *core.Graph) *Dataset {
	ds := &Dataset{Capacity: DefaultCapacity}
	for _, v := range g.Vertices() {
		ds.Users = append(ds.Users, User{ID: v.ID, Name: v.Label})
	}
	for _, e := range g.Edges() {
		ds.Connections = append(ds.Connections, Connection{From: e.From.ID, To: e.To.ID, Weight: e.Weight})
	}

	return ds
}
