package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/redsocial/assignment"
)

func NewAssignCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "assign"
	cmd.Aliases = []string{"groups"}
	cmd.Short = "Give every group the administrator that minimises total inefficiency"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runAssign(cmd, v, fs) }

	cmd.Flags().String("format", "table", "The output format {table|md|csv|tsv|html|simple}")
	cmd.Flags().StringP("output", "o", "", "Write to `file` instead of stdout")

	return cmd
}

func runAssign(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	if err := checkFormat(v.GetString("format")); err != nil {
		return err
	}
	ds, err := loadDataset(v, fs)
	if err != nil {
		return err
	}

	res, err := assignment.Solve(ds.AssignmentGroups(), ds.AssignmentAdministrators())
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(res.Groups))
	for j, g := range res.Groups {
		rows = append(rows, table.Row{g.Name, res.AdminFor(j).Name, res.EfficiencyFor(j)})
	}
	if err := printTable(cmd, v, fs, table.Row{"Group", "Administrator", "Efficiency"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %d\n", color.GreenString("total cost:"), res.TotalCost)

	return nil
}
