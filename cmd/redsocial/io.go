package main

import (
	"bytes"
	"log/slog"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/redsocial/dataset"
	"github.com/katalvlaran/redsocial/internal/render"
)

func loadDataset(v *viper.Viper, fs afero.Fs) (*dataset.Dataset, error) {
	path := v.GetString("data")
	ds, err := dataset.LoadFile(fs, path, dataset.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}
	slog.Debug("dataset loaded", "path", path, "users", len(ds.Users), "connections", len(ds.Connections), "dropped", ds.Dropped)

	return ds, nil
}

func checkFormat(format string, extra ...string) error {
	if !slices.Contains(render.Formats, format) && !slices.Contains(extra, format) {
		return errors.Newf("unknown format: %s", format)
	}
	return nil
}

// printTable writes the table to --output when set, stdout otherwise.
func printTable(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, header table.Row, rows []table.Row) error {
	var buf bytes.Buffer
	if err := render.Table(&buf, v.GetString("format"), header, rows); err != nil {
		return err
	}
	return emit(cmd, v, fs, buf.Bytes())
}

func emit(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, data []byte) error {
	out := v.GetString("output")
	if out == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := afero.WriteFile(fs, out, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", out)
	}
	slog.Info("written", "file", out, "bytes", len(data))
	return nil
}
