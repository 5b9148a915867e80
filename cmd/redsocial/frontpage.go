package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/redsocial/dataset"
	"github.com/katalvlaran/redsocial/internal/filter"
	"github.com/katalvlaran/redsocial/knapsack"
)

func NewFrontPageCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "frontpage"
	cmd.Aliases = []string{"knapsack"}
	cmd.Short = "Pick the publications that maximise benefit within the front page capacity"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runFrontPage(cmd, v, fs) }

	cmd.Flags().Int("capacity", 0, "The front page `size`; 0 uses the dataset capacity")
	cmd.Flags().String("strategy", "two-row", "The table `layout` {two-row|table}")
	cmd.Flags().String("filter", "", "A CEL `expression` over id, likes, comments, size and benefit")
	cmd.Flags().String("format", "table", "The output format {table|md|csv|tsv|html|simple}")
	cmd.Flags().StringP("output", "o", "", "Write to `file` instead of stdout")

	return cmd
}

func runFrontPage(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	if err := checkFormat(v.GetString("format")); err != nil {
		return err
	}
	strategy, err := knapsack.ParseStrategy(v.GetString("strategy"))
	if err != nil {
		return err
	}
	f, err := filter.Compile(v.GetString("filter"))
	if err != nil {
		return err
	}
	ds, err := loadDataset(v, fs)
	if err != nil {
		return err
	}

	capacity := v.GetInt("capacity")
	if capacity == 0 {
		capacity = ds.Capacity
	}
	pubs, err := f.Apply(ds.Publications)
	if err != nil {
		return err
	}

	sel, err := knapsack.Select(dataset.Items(pubs), capacity, knapsack.WithStrategy(strategy))
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(sel.Indices))
	for _, i := range sel.Indices {
		p := pubs[i]
		rows = append(rows, table.Row{p.ID, p.Likes, p.Comments, p.Size, p.Benefit()})
	}
	if err := printTable(cmd, v, fs, table.Row{"ID", "Likes", "Comments", "Size", "Benefit"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %d, %s %d/%d\n",
		color.GreenString("benefit:"), sel.TotalBenefit,
		color.GreenString("size:"), sel.TotalSize, capacity)

	return nil
}
