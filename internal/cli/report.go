package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonboard/internal/config"
	"github.com/rshade/carbonboard/internal/dashboard"
)

// reportParams holds the flags shared by every report view.
type reportParams struct {
	noPrediction  bool
	predictMonths int
}

// newReportCmd creates the report command group with one subcommand per
// view. Running "report" alone shows the overview.
func newReportCmd() *cobra.Command {
	var params reportParams

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show campus emissions reports",
		Long: `Generate one session of campus data and show a report view.

Monthly tables include projected months after the twelve historical months;
use --no-prediction to show history only.`,
		Example: `  # Electricity with nine projected months
  carbonboard report electricity --predict-months 9

  # Carbon history only, as CSV
  carbonboard report carbon --no-prediction --output csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeReport(cmd, dashboard.ViewOverview, params)
		},
	}

	cmd.PersistentFlags().BoolVar(&params.noPrediction, "no-prediction", false,
		"show historical months only")
	cmd.PersistentFlags().IntVar(&params.predictMonths, "predict-months", 0,
		"projected months to show after the history, 1-12 (default from config)")

	for _, v := range dashboard.Views {
		cmd.AddCommand(newReportViewCmd(v, &params))
	}
	return cmd
}

func newReportViewCmd(view dashboard.View, params *reportParams) *cobra.Command {
	return &cobra.Command{
		Use:   string(view),
		Short: fmt.Sprintf("Show the %s report", strings.ToLower(view.Title())),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeReport(cmd, view, *params)
		},
	}
}

func executeReport(cmd *cobra.Command, view dashboard.View, params reportParams) error {
	ctx := cmd.Context()

	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	months := cfg.Campus.PredictionMonths
	if cmd.Flags().Changed("predict-months") {
		if params.predictMonths < 1 || params.predictMonths > 12 {
			return fmt.Errorf("%w: --predict-months must be between 1 and 12, got %d",
				config.ErrInvalidValue, params.predictMonths)
		}
		months = params.predictMonths
	}
	if params.noPrediction {
		months = 0
	}

	snap, err := dashboard.Load(ctx, dashboard.Options{Seed: cfg.Generation.Seed})
	if err != nil {
		return err
	}

	logger.Debug().Ctx(ctx).
		Str("view", string(view)).
		Str("snapshot_id", snap.ID).
		Int("prediction_months", months).
		Msg("rendering report")

	return renderReport(ctx, cmd.OutOrStdout(), cfg, snap, view, months)
}
