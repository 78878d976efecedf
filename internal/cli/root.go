package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/carbonboard/internal/config"
	"github.com/rshade/carbonboard/internal/logging"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of w, or 0 when unknown.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonboard CLI.
// It loads configuration, wires up logging and tracing, and registers the
// report, export, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "carbonboard",
		Short:         "Campus carbon emissions reports",
		Long:          "carbonboard: Generate campus utility consumption data and report its carbon emissions",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file whose sections override the user configuration")
	cmd.PersistentFlags().Uint64("seed", 0, "random seed for reproducible data (default from config, else random)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, ndjson or csv (default from config)")
	cmd.AddCommand(newReportCmd(), NewExportCmd(), newConfigCmd(), NewVersionCmd(ver))

	return cmd
}

// loadConfig builds the effective configuration for this invocation:
// defaults, user file, the --config overlay and environment, then flags.
// The result becomes the global config. Commands annotated with
// skipConfigFile start from defaults so a broken user file can be replaced.
func loadConfig(cmd *cobra.Command) error {
	var cfg *config.Config
	if _, skip := cmd.Annotations[skipConfigFile]; skip {
		cfg = config.Default()
		cfg.ApplyEnv(os.LookupEnv)
	} else {
		overlay, _ := cmd.Flags().GetString("config")
		var err error
		if cfg, err = config.Load(overlay); err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		cfg.Generation.Seed = &seed
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.DefaultFormat, _ = cmd.Flags().GetString("output")
	}

	config.SetGlobalConfig(cfg)
	return nil
}

// skipConfigFile marks commands that must run even when the user config
// file is unreadable.
const skipConfigFile = "skip-config-file"

const rootCmdExample = `  # Show the campus overview
  carbonboard report overview

  # Rank buildings by emissions as JSON
  carbonboard report buildings --output json

  # Reproduce a previous run
  carbonboard report carbon --seed 42

  # Write every dataset as CSV
  carbonboard export --dir ./out --format csv

  # Initialize configuration
  carbonboard config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd(),
		NewConfigGetCmd(), NewConfigSetCmd(),
	)
	return cmd
}
