package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/redsocial/internal/render"
	"github.com/katalvlaran/redsocial/mst"
)

func NewMSTCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "mst"
	cmd.Aliases = []string{"tree"}
	cmd.Short = "Cheapest set of connections keeping every user reachable"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runMST(cmd, v, fs) }

	cmd.Flags().String("method", "union-find", "The component tracking `method` {union-find|relabel}")
	cmd.Flags().String("format", "table", "The output format {table|md|csv|tsv|html|simple|dot|svg}")
	cmd.Flags().StringP("output", "o", "", "Write to `file` instead of stdout")

	return cmd
}

func runMST(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := checkFormat(format, "dot", "svg"); err != nil {
		return err
	}
	method, err := mst.ParseMethod(v.GetString("method"))
	if err != nil {
		return err
	}
	ds, err := loadDataset(v, fs)
	if err != nil {
		return err
	}

	g := ds.Graph()
	tree, err := mst.Kruskal(g, mst.WithMethod(method))
	if err != nil {
		return err
	}

	switch format {
	case "dot", "svg":
		dot := render.ToDOT(g, render.DOTOptions{Undirected: true, Highlight: tree.Edges()})
		if format == "dot" {
			return emit(cmd, v, fs, []byte(dot))
		}
		svg, err := render.RenderSVG(cmd.Context(), dot)
		if err != nil {
			return err
		}
		return emit(cmd, v, fs, svg)
	}

	rows := make([]table.Row, 0, tree.EdgeCount())
	for _, e := range tree.Edges() {
		rows = append(rows, table.Row{e.From.String(), e.To.String(), e.Weight})
	}
	if err := printTable(cmd, v, fs, table.Row{"From", "To", "Weight"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %d\n", color.GreenString("total weight:"), mst.Weight(tree))

	return nil
}
