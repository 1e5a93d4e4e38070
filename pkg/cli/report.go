package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/oraguide/oraguide/pkg/advisor"
	"github.com/oraguide/oraguide/pkg/collector"
	"github.com/oraguide/oraguide/pkg/renderer"
	"github.com/oraguide/oraguide/pkg/serializer"
	"github.com/oraguide/oraguide/pkg/snapshot"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "report",
		EnableShellCompletion: true,
		Usage:                 "Analyze collected diagnostics and render the sizing report",
		Description: `Build a diagnostic snapshot and run the advisory engine over it. By
default the snapshot is assembled from samples previously persisted by
'collect' plus the current database configuration facts; pass --snapshot
to analyze a saved snapshot file instead, without touching the database.

Output is a plain-text operator report. Additionally:
  --properties       writes a connector properties fragment to the given path
  --save-snapshot    writes the assembled snapshot to the given path for reuse
  --raw              serializes raw recommendations (honors --format) instead
                     of the text report

Collections spanning less than one hour are rejected; the sizing formulas
need at least an hour of samples to be meaningful.

# Examples

Report from the database:
  oraguide report --host db1 --service ORCLPDB1 --user oraguide --schema INVENTORY

Report from a saved snapshot, plus connector properties:
  oraguide report --snapshot snap.json --properties connector.properties

Raw recommendations as YAML:
  oraguide report --snapshot snap.json --raw --format yaml`,
		Flags: append(dbFlags(),
			&cli.StringFlag{
				Name:    "snapshot",
				Aliases: []string{"f"},
				Usage:   "path to a saved snapshot file; skips the database entirely",
			},
			&cli.StringFlag{
				Name:  "properties",
				Usage: "also write a connector properties fragment to this path",
			},
			&cli.StringFlag{
				Name:  "save-snapshot",
				Usage: "write the assembled snapshot to this path",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "serialize raw recommendations instead of the text report",
			},
			outputFlag,
			formatFlag,
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			snap, err := loadOrBuildSnapshot(ctx, cmd)
			if err != nil {
				return err
			}

			if savePath := cmd.String("save-snapshot"); savePath != "" {
				if err := writeSnapshot(ctx, snap, savePath); err != nil {
					return err
				}
			}

			recs, err := advisor.New(advisor.WithVersion(version)).Advise(snap)
			if err != nil {
				return fmt.Errorf("failed to compute recommendations: %w", err)
			}

			if propsPath := cmd.String("properties"); propsPath != "" {
				if err := writeProperties(recs, propsPath); err != nil {
					return err
				}
			}

			if cmd.Bool("raw") {
				outFormat := serializer.Format(cmd.String("format"))
				if outFormat.IsUnknown() {
					return fmt.Errorf("unknown output format: %q", outFormat)
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
			}

			r, err := renderer.New()
			if err != nil {
				return err
			}
			report, err := r.Report(snap, recs)
			if err != nil {
				return fmt.Errorf("failed to render report: %w", err)
			}
			return writeText(report, cmd.String("output"))
		},
	}
}

// loadOrBuildSnapshot reads the snapshot file when provided, otherwise
// assembles one from the database.
func loadOrBuildSnapshot(ctx context.Context, cmd *cli.Command) (*snapshot.Snapshot, error) {
	if snapPath := cmd.String("snapshot"); snapPath != "" {
		snap, err := serializer.FromFile[snapshot.Snapshot](snapPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load snapshot from %q: %w", snapPath, err)
		}
		if err := snap.Validate(); err != nil {
			return nil, fmt.Errorf("invalid snapshot %q: %w", snapPath, err)
		}
		return snap, nil
	}

	cfg := collectorConfigFromCmd(cmd, 0, 0)
	c, err := collector.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid connection config: %w", err)
	}
	return c.BuildSnapshot(ctx)
}

func writeSnapshot(ctx context.Context, snap *snapshot.Snapshot, path string) error {
	ser := serializer.NewFileWriterOrStdout(serializer.FormatFromPath(path), path)
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close snapshot writer", "error", err)
			}
		}
	}()
	if err := ser.Serialize(ctx, snap); err != nil {
		return fmt.Errorf("failed to save snapshot to %q: %w", path, err)
	}
	slog.Info("saved snapshot", "path", path)
	return nil
}

func writeProperties(recs *advisor.Recommendations, path string) error {
	r, err := renderer.New()
	if err != nil {
		return err
	}
	props, err := r.ConnectorProperties(recs)
	if err != nil {
		return fmt.Errorf("failed to render connector properties: %w", err)
	}
	if err := os.WriteFile(path, []byte(props), 0o644); err != nil {
		return fmt.Errorf("failed to write connector properties to %q: %w", path, err)
	}
	slog.Info("wrote connector properties", "path", path)
	return nil
}

// writeText writes the rendered report to the output path, or stdout
// when no path is given.
func writeText(text, path string) error {
	if path == "" {
		_, err := fmt.Print(text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write report to %q: %w", path, err)
	}
	slog.Info("wrote report", "path", path)
	return nil
}
