package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/appsettings/appsettings/internal/config"
)

var configFormat string

func init() { //nolint: gochecknoinits
	configCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml or json")

	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective application config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := validator.New().Var(configFormat, "oneof=toml json"); err != nil {
			return errors.Wrap(err, "invalid --format")
		}

		dump := config.DumpConfig
		if configFormat == "json" {
			dump = config.DumpConfigJSON
		}

		out, err := dump(&cfg)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), out)

		return err //nolint: wrapcheck
	},
}
