package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/oraguide/oraguide/pkg/advisor"
	"github.com/oraguide/oraguide/pkg/serializer"
	"github.com/oraguide/oraguide/pkg/snapshot"
)

func recommendCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recommend",
		Aliases:               []string{"rec"},
		EnableShellCompletion: true,
		Usage:                 "Compute recommendations from a snapshot file",
		Description: `Run the advisory engine over a previously captured diagnostic snapshot
and serialize the resulting recommendations. No database connection is
made; the snapshot file is the only input.

The recommendations can be output in JSON, YAML, or table format.

# Examples

Recommendations from a snapshot to stdout:
  oraguide recommend --snapshot snap.json

YAML to a file:
  oraguide recommend --snapshot snap.yaml --format yaml --output recs.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "snapshot",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "path to a diagnostic snapshot file (json or yaml)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			snapPath := cmd.String("snapshot")
			snap, err := serializer.FromFile[snapshot.Snapshot](snapPath)
			if err != nil {
				return fmt.Errorf("failed to load snapshot from %q: %w", snapPath, err)
			}
			if err := snap.Validate(); err != nil {
				return fmt.Errorf("invalid snapshot %q: %w", snapPath, err)
			}

			recs, err := advisor.New(advisor.WithVersion(version)).Advise(snap)
			if err != nil {
				return fmt.Errorf("failed to compute recommendations: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if closer, ok := ser.(serializer.Closer); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}
			}()

			return ser.Serialize(ctx, recs)
		},
	}
}
