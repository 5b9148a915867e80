package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/redsocial/connectivity"
	"github.com/katalvlaran/redsocial/core"
)

func NewBlockCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "block"
	cmd.Short = "Simulate blocking a connection and suggest the fewest new ones to reconnect the network"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runBlock(cmd, v, fs) }

	cmd.Flags().String("block", "", "The connection to block, as `from:to` user ids")
	cmd.Flags().Duration("timeout", 0, "Abort the repair search after this `duration`; 0 waits forever")
	cmd.Flags().Int("max-candidates", 0, "Refuse searches over more than `n` candidate connections; 0 disables the cap")
	cmd.Flags().String("format", "table", "The output format {table|md|csv|tsv|html|simple}")
	cmd.Flags().StringP("output", "o", "", "Write to `file` instead of stdout")
	_ = cmd.MarkFlagRequired("block")

	return cmd
}

func runBlock(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	if err := checkFormat(v.GetString("format")); err != nil {
		return err
	}
	from, to, err := parseConnection(v.GetString("block"))
	if err != nil {
		return err
	}
	maxCandidates := v.GetInt("max-candidates")
	if maxCandidates < 0 {
		return errors.Newf("max-candidates must be ≥ 0, got %d", maxCandidates)
	}
	ds, err := loadDataset(v, fs)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := v.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	blocked := core.Edge{From: core.Vertex{ID: from}, To: core.Vertex{ID: to}}
	res, err := connectivity.SimulateBlock(ds.Graph(), blocked,
		connectivity.WithContext(ctx),
		connectivity.WithMaxCandidates(maxCandidates),
	)
	if err != nil {
		return err
	}

	if res.Connected {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", color.GreenString("still connected after blocking"), res.Blocked)
		return nil
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %d components, %d new connections needed\n",
		color.YellowString("network splits after blocking"), res.Blocked, res.Components, len(res.Repairs))

	rows := make([]table.Row, 0, len(res.Repairs))
	for _, e := range res.Repairs {
		rows = append(rows, table.Row{e.From.String(), e.To.String(), e.Weight})
	}
	return printTable(cmd, v, fs, table.Row{"From", "To", "Weight"}, rows)
}

// parseConnection reads "from:to".
func parseConnection(s string) (int64, int64, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errors.Newf("connection must look like from:to, got %q", s)
	}
	from, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "from id in %q", s)
	}
	to, err := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "to id in %q", s)
	}
	return from, to, nil
}
