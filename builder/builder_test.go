package builder_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redsocial/builder"
)

func TestConstructors_Validation(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"path", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle", builder.Cycle(2), builder.ErrTooFewVertices},
		{"complete", builder.Complete(0), builder.ErrTooFewVertices},
		{"star", builder.Star(1), builder.ErrTooFewVertices},
		{"sparse-n", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"sparse-p", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"sparse-rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.con)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithLabelScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
}

func TestPathCycleStar(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithFirstID(1)}, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, g.VertexIDs())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(3, 4))
	assert.False(t, g.HasEdge(4, 3))
	v, _ := g.Vertex(1)
	assert.Equal(t, "u0", v.Label)

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSymmetric()}, builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 4))

	g, err = builder.BuildGraph(nil, builder.Star(4))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, g.NeighborIDs(0))
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSymmetric()}, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())
	assert.Equal(t, int64(12), g.TotalWeight())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
	}
	a, err := builder.BuildGraph(opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	opts[0] = builder.WithSeed(42)
	b, err := builder.BuildGraph(opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
		assert.NotEqual(t, e.From.ID, e.To.ID)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	g, err = builder.BuildGraph(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 20, g.EdgeCount())
}
