package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/oraguide/oraguide/pkg/collector"
	"github.com/oraguide/oraguide/pkg/defaults"
)

func collectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "collect",
		EnableShellCompletion: true,
		Usage:                 "Sample diagnostic metrics from the source database",
		Description: `Run the sampling job against the source database. On a fixed interval the
command reads:
  - log switch rate (switches/hour)
  - archived redo volume (GB/hour)
  - oldest open transaction age and open transaction count
  - archive log retention window and disk usage

Samples are stored in an ORAGUIDE_SAMPLES working table in the diagnostic
user's schema so a later 'report' run can analyze them. Collect over a
representative window; at least 24 hours covering peak load is
recommended, and windows under one hour cannot be analyzed at all.

# Examples

Sample every 10 minutes for 24 hours:
  oraguide collect --host db1 --service ORCLPDB1 --user oraguide --schema INVENTORY

Short, denser collection:
  oraguide collect --host db1 --service ORCLPDB1 --user oraguide --schema INVENTORY \
    --interval 1m --duration 2h`,
		Flags: append(dbFlags(),
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "time between samples",
				Value: defaults.SampleInterval,
			},
			&cli.DurationFlag{
				Name:  "duration",
				Usage: "total collection window",
				Value: defaults.CollectionDuration,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := collectorConfigFromCmd(cmd, cmd.Duration("interval"), cmd.Duration("duration"))

			c, err := collector.New(cfg)
			if err != nil {
				return fmt.Errorf("invalid collection config: %w", err)
			}
			if err := c.Collect(ctx); err != nil {
				return fmt.Errorf("collection failed: %w", err)
			}
			return nil
		},
	}
}
