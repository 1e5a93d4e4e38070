package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/oraguide/oraguide/pkg/logging"
)

const (
	name           = "oraguide"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/oraguide/oraguide/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Run executes the CLI with the given arguments and returns the exit error.
func Run(ctx context.Context, args []string) error {
	root := &cli.Command{
		Name:                  name,
		Version:               version,
		Usage:                 "Connector sizing advisor for log-mining change capture",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			collectCmd(),
			reportCmd(),
			recommendCmd(),
			cleanupCmd(),
		},
	}

	return root.Run(ctx, args)
}

// Execute runs the CLI against os.Args, exiting non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
