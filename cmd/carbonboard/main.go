// Command carbonboard generates campus utility data and reports its carbon
// emissions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rshade/carbonboard/internal/cli"
	"github.com/rshade/carbonboard/pkg/version"
)

func run(ctx context.Context, args []string) error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
