// Package app implements the main application commands.
package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/appsettings/appsettings/internal/config"
	"github.com/appsettings/appsettings/internal/logger"
)

var (
	configPath string   // Path to the configuration directory
	envFiles   []string // dotenv files overriding config Env.Files

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "appsettings",
	Short: "appsettings builds and prints the web application start-up settings",
	Long: `appsettings builds the start-up settings record of the web application
from the environment (DATABASE_URL) and prints it the way the host framework reads it.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the config directory")
	rootCmd.PersistentFlags().StringArrayVar(&envFiles, "env-file", nil, "dotenv file to load (repeatable)")
}

// setup reads the config, starts the logger and loads the dotenv files.
func setup(cmd *cobra.Command, _ []string) error {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err
	}

	if err = logger.Init(cfg.Log); err != nil {
		return err
	}

	files := cfg.Env.Files
	if cmd.Flags().Changed("env-file") {
		files = envFiles
	}

	if err = config.LoadEnvFiles(files...); err != nil {
		return err
	}

	log.Debug().Strs("envFiles", files).Str("config", configPath).Msg("setup done")

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
