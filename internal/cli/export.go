package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonboard/internal/config"
	"github.com/rshade/carbonboard/internal/dashboard"
	"github.com/rshade/carbonboard/internal/export"
)

// exportParams holds the flags of the export command.
type exportParams struct {
	dir         string
	format      string
	concurrency int
}

// NewExportCmd creates the export command, which writes every dataset of
// one generated session to a directory.
func NewExportCmd() *cobra.Command {
	var params exportParams

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write generated datasets to files",
		Long: `Generate one session of campus data and write the historical, projection,
buildings, sources and yearly datasets to separate files in --dir.`,
		Example: `  # CSV files in ./out
  carbonboard export --dir ./out

  # JSON files for a fixed seed
  carbonboard export --dir ./out --format json --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeExport(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.dir, "dir", "", "directory to write files into (required)")
	cmd.Flags().StringVar(&params.format, "format", string(export.FormatCSV), "file format: csv or json")
	cmd.Flags().IntVar(&params.concurrency, "concurrency", 0, "maximum files written at once (default CPU count)")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

func executeExport(cmd *cobra.Command, params exportParams) error {
	ctx := cmd.Context()

	format, err := export.ParseFormat(params.format)
	if err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	snap, err := dashboard.Load(ctx, dashboard.Options{Seed: cfg.Generation.Seed})
	if err != nil {
		return err
	}

	paths, err := export.Write(ctx, snap, export.Options{
		Dir:         params.dir,
		Format:      format,
		Concurrency: params.concurrency,
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	for _, p := range paths {
		cmd.Println(p)
	}
	cmd.Printf("Exported %d files (snapshot %s, seed %d)\n", len(paths), snap.ID, snap.Seed)
	return nil
}
