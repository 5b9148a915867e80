package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/redsocial/core"
	"github.com/katalvlaran/redsocial/dijkstra"
)

func NewDistancesCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "distances"
	cmd.Aliases = []string{"dijkstra", "recommend"}
	cmd.Short = "Shortest connection distance from one user to every other user"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runDistances(cmd, v, fs) }

	cmd.Flags().Int64("source", 0, "The `id` of the user to start from")
	cmd.Flags().String("strategy", "heap", "The vertex selection `strategy` {heap|linear}")
	cmd.Flags().Int64("max-distance", 0, "Leave users farther than this `distance` unreachable; 0 disables the limit")
	cmd.Flags().String("format", "table", "The output format {table|md|csv|tsv|html|simple}")
	cmd.Flags().StringP("output", "o", "", "Write to `file` instead of stdout")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func runDistances(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	if err := checkFormat(v.GetString("format")); err != nil {
		return err
	}
	strategy, err := dijkstra.ParseStrategy(v.GetString("strategy"))
	if err != nil {
		return err
	}
	ds, err := loadDataset(v, fs)
	if err != nil {
		return err
	}

	g := ds.Graph()
	source := v.GetInt64("source")
	opts := []dijkstra.Option{
		dijkstra.Source(source),
		dijkstra.WithStrategy(strategy),
		dijkstra.WithReturnPath(),
	}
	if maxDist := v.GetInt64("max-distance"); maxDist > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(maxDist))
	}
	dist, prev, err := dijkstra.Dijkstra(g, opts...)
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(dist))
	for _, u := range g.Vertices() {
		d := dist[u.ID]
		if d == dijkstra.Infinity {
			rows = append(rows, table.Row{u.ID, u.String(), "unreachable", ""})
			continue
		}
		ids, err := dijkstra.PathTo(prev, source, u.ID)
		if err != nil {
			return err
		}
		rows = append(rows, table.Row{u.ID, u.String(), d, routeString(g, ids)})
	}

	return printTable(cmd, v, fs, table.Row{"ID", "User", "Distance", "Route"}, rows)
}

func routeString(g *core.Graph, ids []int64) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		u, _ := g.Vertex(id)
		names[i] = u.String()
	}
	return strings.Join(names, " > ")
}
