package main

import (
	"bytes"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/redsocial/builder"
	"github.com/katalvlaran/redsocial/dataset"
)

func NewGenerateCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "generate"
	cmd.Aliases = []string{"gen"}
	cmd.Short = "Generate a random social network dataset"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runGenerate(cmd, v, fs) }

	cmd.Flags().Int("vertices", 10, "The number of `users`")
	cmd.Flags().Float64("density", 0.3, "The `probability` of a connection between two users")
	cmd.Flags().Int64("seed", 1, "The random `seed`")
	cmd.Flags().Int64("min-weight", 1, "The smallest connection `weight`")
	cmd.Flags().Int64("max-weight", 10, "The largest connection `weight`")
	cmd.Flags().StringP("output", "o", "", "Write to `file` instead of stdout; the extension picks the encoding")

	return cmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	minW, maxW := v.GetInt64("min-weight"), v.GetInt64("max-weight")
	if minW < 0 || maxW < minW {
		return errors.Newf("weights need 0 ≤ min ≤ max, got %d..%d", minW, maxW)
	}
	format := dataset.FormatJSON
	if out := v.GetString("output"); out != "" {
		f, err := dataset.FormatFromPath(out)
		if err != nil {
			return err
		}
		format = f
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithFirstID(1),
		builder.WithSeed(v.GetInt64("seed")),
		builder.WithWeightFn(builder.UniformWeightFn(minW, maxW)),
	}, builder.RandomSparse(v.GetInt("vertices"), v.GetFloat64("density")))
	if err != nil {
		return err
	}
	slog.Debug("graph generated", "users", g.VertexCount(), "connections", g.EdgeCount())

	var buf bytes.Buffer
	if err := dataset.Encode(&buf, format, dataset.FromGraph(g)); err != nil {
		return err
	}
	return emit(cmd, v, fs, buf.Bytes())
}
