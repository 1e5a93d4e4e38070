package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/oraguide/oraguide/pkg/collector"
)

func cleanupCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cleanup",
		EnableShellCompletion: true,
		Usage:                 "Remove diagnostic state from the source database",
		Description: `Drop the ORAGUIDE_SAMPLES working table created by 'collect'. Safe to run
when nothing was collected; a missing table is not an error.

# Examples

  oraguide cleanup --host db1 --service ORCLPDB1 --user oraguide --schema INVENTORY`,
		Flags: dbFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := collectorConfigFromCmd(cmd, 0, 0)

			c, err := collector.New(cfg)
			if err != nil {
				return fmt.Errorf("invalid connection config: %w", err)
			}
			if err := c.Cleanup(ctx); err != nil {
				return fmt.Errorf("cleanup failed: %w", err)
			}
			return nil
		},
	}
}
