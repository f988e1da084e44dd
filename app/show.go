package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/appsettings/appsettings/internal/logger"
	"github.com/appsettings/appsettings/internal/settings"
)

// outputOptions are the flags of the show command.
type outputOptions struct {
	Format  string `validate:"oneof=toml json"`
	Reveal  bool
	Metrics bool
}

var showOpts outputOptions

func init() { //nolint: gochecknoinits
	showCmd.Flags().StringVar(&showOpts.Format, "format", "toml", "Output format: toml or json")
	showCmd.Flags().BoolVar(&showOpts.Reveal, "reveal", false, "Print the database URI without masking the password")
	showCmd.Flags().BoolVar(&showOpts.Metrics, "metrics", false, "Dump the log statement metrics to stderr afterwards")

	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings record under the host framework keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := validator.New().Struct(showOpts); err != nil {
			return errors.Wrap(err, "invalid flags")
		}

		s := settings.FromEnv()
		logSettings(s)

		out, err := renderSettings(s, showOpts)
		if err != nil {
			return err
		}

		if _, err = fmt.Fprint(cmd.OutOrStdout(), out); err != nil {
			return err //nolint: wrapcheck
		}

		if showOpts.Metrics {
			return logger.WriteMetrics(cmd.ErrOrStderr())
		}

		return nil
	},
}

// logSettings reports what the host application is about to receive.
func logSettings(s settings.Settings) {
	_, ok := s.DatabaseURI()
	if !ok {
		log.Warn().Str("env", settings.EnvDatabaseURL).Msg("database uri is not set")
	}

	log.Info().
		Str("profile", string(s.Profile())).
		Bool("databaseURISet", ok).
		Stringer("cacheType", s.CacheBackendKind()).
		Bool("debug", s.Debug()).
		Msg("settings loaded")
}

func renderSettings(s settings.Settings, opts outputOptions) (string, error) {
	v := s.View(opts.Reveal)

	if opts.Format == "json" {
		return settings.DumpJSON(v)
	}

	return settings.DumpTOML(v)
}
