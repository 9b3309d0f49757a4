// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:     "cardgen",
		Usage:    "Generate Luhn-valid fake card numbers for testing and validate numbers",
		Version:  version,
		Commands: getCommands(version),
		// Without a subcommand the interactive session runs.
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInteractive(ctx, "", "")
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
