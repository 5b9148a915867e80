package dataset_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redsocial/dataset"
	"github.com/katalvlaran/redsocial/knapsack"
)

func loadDemo(t *testing.T, logBuf *bytes.Buffer) *dataset.Dataset {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(logBuf, nil))
	ds, err := dataset.LoadFile(afero.NewOsFs(), "testdata/demo.json", dataset.WithLogger(logger))
	require.NoError(t, err)

	return ds
}

func TestLoadFile_JSON(t *testing.T) {
	var logs bytes.Buffer
	ds := loadDemo(t, &logs)

	assert.Equal(t, 100, ds.Capacity)
	assert.Len(t, ds.Users, 4)
	assert.Len(t, ds.Connections, 4)
	assert.Equal(t, 1, ds.Dropped)
	assert.Contains(t, logs.String(), "dropping connection to unknown user")
	assert.Contains(t, logs.String(), "to=9")

	u, ok := ds.User(3)
	require.True(t, ok)
	assert.Equal(t, "Caro", u.Name)
	_, ok = ds.User(42)
	assert.False(t, ok)
}

func TestDataset_Adapters(t *testing.T) {
	ds := loadDemo(t, &bytes.Buffer{})

	g := ds.Graph()
	assert.Equal(t, []int64{1, 2, 3, 4}, g.VertexIDs())
	assert.Equal(t, 4, g.EdgeCount())
	v, _ := g.Vertex(2)
	assert.Equal(t, "Beto", v.Label)

	assert.Equal(t, []knapsack.Item{
		{Benefit: 60, Size: 50},
		{Benefit: 50, Size: 50},
		{Benefit: 50, Size: 50},
	}, ds.Items())

	groups := ds.AssignmentGroups()
	admins := ds.AssignmentAdministrators()
	require.Len(t, groups, 2)
	require.Len(t, admins, 2)
	assert.Equal(t, "Chess", groups[1].Name)
	assert.Equal(t, []int{50, 85}, admins[1].Efficiency)
}

func TestDecode_TOMLAndDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	data, err := afero.ReadFile(afero.NewOsFs(), "testdata/demo.toml")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/net.toml", data, 0o644))

	ds, err := dataset.LoadFile(fs, "/net.toml")
	require.NoError(t, err)
	assert.Equal(t, dataset.DefaultCapacity, ds.Capacity)
	assert.Equal(t, []dataset.Connection{{From: 1, To: 2, Weight: 7}}, ds.Connections)
}

func TestDecode_Errors(t *testing.T) {
	_, err := dataset.Decode(strings.NewReader("{"), dataset.FormatJSON)
	assert.True(t, errors.Is(err, dataset.ErrDecode))

	_, err = dataset.Decode(strings.NewReader("{}"), dataset.Format("xml"))
	assert.True(t, errors.Is(err, dataset.ErrUnknownFormat))

	_, err = dataset.Decode(strings.NewReader(`{"users":[{"id":1},{"id":1}]}`), dataset.FormatJSON)
	assert.True(t, errors.Is(err, dataset.ErrDuplicateUser))

	_, err = dataset.Decode(strings.NewReader(`{"publications":[{"id":1,"size":0}]}`), dataset.FormatJSON)
	assert.True(t, errors.Is(err, dataset.ErrInvalidPublication))

	_, err = dataset.LoadFile(afero.NewMemMapFs(), "/missing.json")
	assert.Error(t, err)

	_, err = dataset.LoadFile(afero.NewMemMapFs(), "/net.csv")
	assert.True(t, errors.Is(err, dataset.ErrUnknownFormat))
}

func TestEncode_RoundTrip(t *testing.T) {
	ds := loadDemo(t, &bytes.Buffer{})
	for _, f := range []dataset.Format{dataset.FormatJSON, dataset.FormatTOML, dataset.FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, dataset.Encode(&buf, f, ds))

			back, err := dataset.Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, ds.Users, back.Users)
			assert.Equal(t, ds.Connections, back.Connections)
			assert.Equal(t, ds.Administrators, back.Administrators)
			assert.Zero(t, back.Dropped)
		})
	}
}

func TestFromGraph(t *testing.T) {
	ds := loadDemo(t, &bytes.Buffer{})
	back := dataset.FromGraph(ds.Graph())

	assert.Equal(t, ds.Users, back.Users)
	assert.Equal(t, ds.Connections, back.Connections)
}

func TestPublication_Benefit(t *testing.T) {
	assert.Equal(t, int64(48), dataset.Publication{Likes: 4, Comments: 4}.Benefit())
}
