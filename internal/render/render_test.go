package render_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redsocial/core"
	"github.com/katalvlaran/redsocial/internal/render"
)

func network() *core.Graph {
	ana := core.Vertex{ID: 1, Label: "Ana"}
	beto := core.Vertex{ID: 2, Label: "Beto"}
	caro := core.Vertex{ID: 3}

	g := core.NewGraph()
	g.AddEdge(beto, caro, 2)
	g.AddEdge(ana, beto, 1)

	return g
}

func TestToDOT_Golden(t *testing.T) {
	gd := goldie.New(t)

	gd.Assert(t, "directed", []byte(render.ToDOT(network(), render.DOTOptions{})))
	gd.Assert(t, "undirected_highlight", []byte(render.ToDOT(network(), render.DOTOptions{
		Undirected: true,
		Highlight:  []core.Edge{{From: core.Vertex{ID: 3}, To: core.Vertex{ID: 2}}},
	})))
}

func TestRenderSVG(t *testing.T) {
	svg, err := render.RenderSVG(context.Background(), render.ToDOT(network(), render.DOTOptions{}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "Beto")

	_, err = render.RenderSVG(context.Background(), "digraph {")
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	header := table.Row{"ID", "Name"}
	rows := []table.Row{{1, "Ana"}, {2, "Beto"}}

	var buf bytes.Buffer
	require.NoError(t, render.Table(&buf, "csv", header, rows))
	assert.Equal(t, "ID,Name\n1,Ana\n2,Beto\n", buf.String())

	for _, f := range render.Formats {
		buf.Reset()
		require.NoError(t, render.Table(&buf, f, header, rows), f)
		assert.Contains(t, buf.String(), "Beto", f)
	}

	err := render.Table(&buf, "xml", header, rows)
	assert.True(t, errors.Is(err, render.ErrUnknownFormat))
}
