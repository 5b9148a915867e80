package bfs_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redsocial/bfs"
	"github.com/katalvlaran/redsocial/core"
)

func v(id int64) core.Vertex { return core.Vertex{ID: id} }

// cycle4 builds the directed cycle 1→2→3→4→1.
func cycle4() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(v(1), v(2), 1)
	g.AddEdge(v(2), v(3), 1)
	g.AddEdge(v(3), v(4), 1)
	g.AddEdge(v(4), v(1), 1)

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	assert.True(t, errors.Is(err, bfs.ErrGraphNil))

	_, err = bfs.BFS(core.NewGraph(), 1)
	assert.True(t, errors.Is(err, bfs.ErrStartVertexNotFound))

	_, err = bfs.BFS(cycle4(), 1, bfs.WithMaxDepth(-1))
	assert.True(t, errors.Is(err, bfs.ErrOptionViolation))
}

func TestBFS_DirectedFollowsEdgeDirection(t *testing.T) {
	res, err := bfs.BFS(cycle4(), 2)
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3, 4, 1}, res.Order)
	assert.Equal(t, 3, res.Depth[1])
}

func TestBFS_UndirectedViewLayers(t *testing.T) {
	res, err := bfs.BFS(core.Undirected(cycle4(), nil), 1)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 4, 3}, res.Order)
	assert.Equal(t, map[int64]int{1: 0, 2: 1, 4: 1, 3: 2}, res.Depth)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, path)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	view := core.Undirected(cycle4(), nil)

	res, err := bfs.BFS(view, 1, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Visited(3))
	_, err = res.PathTo(3)
	assert.True(t, errors.Is(err, bfs.ErrNoPath))

	res, err = bfs.BFS(view, 1, bfs.WithFilterNeighbor(func(curr, nbr int64) bool {
		return !(curr == 1 && nbr == 4)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, res.Order)
	assert.Equal(t, 3, res.Depth[4])
}

func TestBFS_HookErrorAndCancel(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(cycle4(), 1, bfs.WithOnVisit(func(id int64, _ int) error {
		if id == 3 {
			return stop
		}

		return nil
	}))
	assert.True(t, errors.Is(err, stop))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(cycle4(), 1, bfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}
