package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := cobrax.NewRoot(v)
	cmd.Use = "redsocial"
	cmd.Short = "redsocial analyses a small social network"
	cmd.Version = cobrax.VersionFunc()
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cobrax.RootPersistentPreRunE(cmd, v, fs, args)
	}
	cmd.PersistentFlags().StringP("data", "d", "network.json", "The dataset `file` {.json|.toml|.yaml}")
	_ = cmd.MarkPersistentFlagFilename("data", "json", "toml", "yaml", "yml")

	cmd.AddCommand(NewMSTCommand(v, fs))
	cmd.AddCommand(NewDistancesCommand(v, fs))
	cmd.AddCommand(NewFrontPageCommand(v, fs))
	cmd.AddCommand(NewBlockCommand(v, fs))
	cmd.AddCommand(NewAssignCommand(v, fs))
	cmd.AddCommand(NewGenerateCommand(v, fs))
	cmd.AddCommand(NewGenConfCmd(v, fs))

	cmd.SetGlobalNormalizationFunc(cobrax.SnakeToKebab)

	return cmd
}
