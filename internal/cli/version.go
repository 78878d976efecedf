package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonboard/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("carbonboard %s\n", ver)
			cmd.Printf("  commit: %s\n", version.GetGitCommit())
			cmd.Printf("  built:  %s\n", version.GetBuildDate())
			cmd.Printf("  go:     %s\n", runtime.Version())
		},
	}
}
