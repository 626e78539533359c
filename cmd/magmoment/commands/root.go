package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"magmoment/internal/app"
)

var (
	constantsPath string
	reportDir     string
	verbose       bool

	appCtx *app.Wire
	logger *zap.Logger
)

// Execute runs the magmoment CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "magmoment",
		Short: "Derive energy phases, ionization checks and magnetic moment from material constants",
		Long: `magmoment runs a fixed derivation chain over a table of material constants:
critical density, radius of action, base energy e0, fourteen energy phases,
ionization checks for the N, M, L and K shells, and the magnetic moment at
phase index 6.

Run without arguments to print the full report. The built-in table describes
iron; pass --constants to substitute a whole table from a TOML or YAML file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			appCtx, err = app.NewWire(app.Config{
				ConstantsPath: constantsPath,
				ReportDir:     reportDir,
				Logger:        logger,
			})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runReport,
	}

	root.PersistentFlags().StringVar(&constantsPath, "constants", "", "constant table file (.toml, .yaml) replacing the built-in iron table")
	root.PersistentFlags().StringVar(&reportDir, "save", "", "directory to save the report as JSON")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each pipeline step to stderr")

	root.AddCommand(phasesCmd(), ionizeCmd(), momentCmd(), constantsCmd(), fingerprintCmd())
	return root
}
