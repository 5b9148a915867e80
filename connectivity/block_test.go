package connectivity_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redsocial/connectivity"
	"github.com/katalvlaran/redsocial/core"
)

var (
	a = core.Vertex{ID: 1, Label: "A"}
	b = core.Vertex{ID: 2, Label: "B"}
	c = core.Vertex{ID: 3, Label: "C"}
	d = core.Vertex{ID: 4, Label: "D"}
)

func chainABC() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)

	return g
}

// withRepairs returns the undirected view of g minus blocked plus the repairs.
func withRepairs(g *core.Graph, res *connectivity.Result) *core.UndirectedView {
	view := core.Undirected(g, func(e core.Edge) bool {
		return e.Connects(res.Blocked.From.ID, res.Blocked.To.ID)
	})
	for _, r := range res.Repairs {
		view.Connect(r.From.ID, r.To.ID)
	}

	return view
}

func TestSimulateBlock_Validation(t *testing.T) {
	_, err := connectivity.SimulateBlock(nil, core.Edge{From: a, To: b})
	assert.True(t, errors.Is(err, connectivity.ErrNilGraph))

	_, err = connectivity.SimulateBlock(chainABC(), core.Edge{From: b, To: a})
	assert.True(t, errors.Is(err, connectivity.ErrEdgeNotFound))
	assert.True(t, errors.Is(err, core.ErrEdgeNotFound))

	assert.Panics(t, func() { connectivity.WithMaxCandidates(-1)(&connectivity.Options{}) })
}

// TestSimulateBlock_TriangleStaysConnected blocks A→B in a symmetrized triangle.
func TestSimulateBlock_TriangleStaysConnected(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(c, a, 1)
	g = core.Symmetrize(g)

	res, err := connectivity.SimulateBlock(g, core.Edge{From: a, To: b})
	require.NoError(t, err)
	assert.True(t, res.Connected)
	assert.Empty(t, res.Repairs)
	assert.Equal(t, 1, res.Components)
	assert.Equal(t, 6, g.EdgeCount(), "graph untouched")
}

// TestSimulateBlock_ChainNeedsOneRepair blocks A→B in A→B→C.
func TestSimulateBlock_ChainNeedsOneRepair(t *testing.T) {
	g := chainABC()
	res, err := connectivity.SimulateBlock(g, core.Edge{From: a, To: b, Weight: 99})
	require.NoError(t, err)

	assert.False(t, res.Connected)
	assert.Equal(t, 2, res.Components)
	assert.Equal(t, int64(1), res.Blocked.Weight, "stored edge reported")
	require.Len(t, res.Repairs, 1)
	assert.Equal(t, core.Edge{From: a, To: b, Weight: connectivity.RepairWeight}, res.Repairs[0])
	assert.True(t, connectivity.IsConnected(withRepairs(g, res)))
}

func TestSimulateBlock_NonBridgeInCycle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(c, d, 1)
	g.AddEdge(d, a, 1)

	res, err := connectivity.SimulateBlock(g, core.Edge{From: a, To: b})
	require.NoError(t, err)
	assert.True(t, res.Connected)
	assert.Empty(t, res.Repairs)
}

// TestSimulateBlock_ReverseDirectionSurvives: only A→B is blocked, B→A keeps them joined.
func TestSimulateBlock_ReverseDirectionSurvives(t *testing.T) {
	g := chainABC()
	g.AddEdge(b, a, 5)

	res, err := connectivity.SimulateBlock(g, core.Edge{From: a, To: b})
	require.NoError(t, err)
	assert.True(t, res.Connected)
}

func TestSimulateBlock_IsolatedVertices(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(a, b, 1)
	g.AddVertex(c)
	g.AddVertex(d)

	res, err := connectivity.SimulateBlock(g, core.Edge{From: a, To: b})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Components)
	require.Len(t, res.Repairs, 3)
	// first 3-combination in candidate order: (1,2) (1,3) (1,4)
	assert.Equal(t, []int64{2, 3, 4}, []int64{res.Repairs[0].To.ID, res.Repairs[1].To.ID, res.Repairs[2].To.ID})
	assert.True(t, connectivity.IsConnected(withRepairs(g, res)))
}

func TestSimulateBlock_Bounds(t *testing.T) {
	_, err := connectivity.SimulateBlock(chainABC(), core.Edge{From: a, To: b}, connectivity.WithMaxCandidates(1))
	assert.True(t, errors.Is(err, connectivity.ErrTooManyCandidates))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = connectivity.SimulateBlock(chainABC(), core.Edge{From: a, To: b}, connectivity.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))

	// a connected result never reaches the search
	res, err := connectivity.SimulateBlock(core.Symmetrize(chainABC()), core.Edge{From: a, To: b}, connectivity.WithContext(ctx))
	require.NoError(t, err)
	assert.True(t, res.Connected)
}

func TestIsConnected(t *testing.T) {
	assert.True(t, connectivity.IsConnected(core.NewUndirectedView()))
	assert.True(t, connectivity.IsConnected(core.NewUndirectedView(7)))
	assert.False(t, connectivity.IsConnected(core.NewUndirectedView(7, 8)))
	assert.Equal(t, 2, connectivity.Components(core.NewUndirectedView(7, 8)))
}

// TestSimulateBlock_RepairsAreMinimal: k components always need exactly k-1 repairs.
func TestSimulateBlock_RepairsAreMinimal(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for round := 0; round < 30; round++ {
		g := core.NewGraph()
		for i := int64(1); i <= 7; i++ {
			g.AddVertex(core.Vertex{ID: i})
		}
		for i := 0; i < 6; i++ {
			u, v := rng.Int63n(7)+1, rng.Int63n(7)+1
			g.AddEdge(core.Vertex{ID: u}, core.Vertex{ID: v}, 1)
		}
		blocked := g.Edges()[rng.Intn(g.EdgeCount())]

		res, err := connectivity.SimulateBlock(g, blocked)
		require.NoError(t, err)
		if res.Connected {
			assert.Empty(t, res.Repairs)
			continue
		}
		assert.Len(t, res.Repairs, res.Components-1, "round %d", round)
		assert.True(t, connectivity.IsConnected(withRepairs(g, res)), "round %d", round)
	}
}
