package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fsrun/internal/cli"
	"fsrun/internal/cli/commands"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := commands.NewRootCommand(version, os.Stdout, os.Stderr)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Run failures were already reported; only cobra's own errors remain.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
