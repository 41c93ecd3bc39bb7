// Package cli implements the freightcalc command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/freight-weight/internal/application/usecase"
	"github.com/hapkiduki/freight-weight/internal/infrastructure/config"
	"github.com/hapkiduki/freight-weight/internal/infrastructure/logging"
	"github.com/hapkiduki/freight-weight/pkg/logger"
)

// Execute runs the root command and exits non-zero on failure.
func Execute(version string) {
	cmd := newRootCmd(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	calc *usecase.Calculator
	log  *logger.Logger
}

func newRootCmd(version string) *cobra.Command {
	var (
		configFile string
		debug      bool
	)
	a := &app{}

	cmd := &cobra.Command{
		Use:           "freightcalc",
		Short:         "Volumetric and chargeable weight calculator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			level := "warn"
			if debug {
				level = "debug"
			}
			log, err := logger.New(logger.Config{
				Level:  level,
				Format: "console",
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			a.log = log.Named("freightcalc")
			a.calc = usecase.NewCalculator(logging.New(a.log), cfg.CalculatorOptions())
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./config.yaml if present)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(
		calcCmd(a),
		convertCmd(a),
		carriersCmd(a),
		manifestCmd(a),
	)
	return cmd
}
