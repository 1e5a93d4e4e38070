package cli

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/oraguide/oraguide/pkg/collector"
	"github.com/oraguide/oraguide/pkg/defaults"
	"github.com/oraguide/oraguide/pkg/serializer"
)

// Shared output flags.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "output format (json, yaml, or table)",
		Value: string(serializer.FormatJSON),
	}
)

// dbFlags returns the source database connection flags shared by the
// commands that talk to the database.
func dbFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "user",
			Usage:   "database user for diagnostic queries",
			Sources: cli.EnvVars("ORAGUIDE_DB_USER"),
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "database password (prefer the environment variable)",
			Sources: cli.EnvVars("ORAGUIDE_DB_PASSWORD"),
		},
		&cli.StringFlag{
			Name:    "host",
			Usage:   "database listener host",
			Sources: cli.EnvVars("ORAGUIDE_DB_HOST"),
		},
		&cli.IntFlag{
			Name:    "port",
			Usage:   "database listener port",
			Sources: cli.EnvVars("ORAGUIDE_DB_PORT"),
			Value:   1521,
		},
		&cli.StringFlag{
			Name:    "service",
			Usage:   "database service name",
			Sources: cli.EnvVars("ORAGUIDE_DB_SERVICE"),
		},
		&cli.StringFlag{
			Name:    "schema",
			Usage:   "owner of the tables the connector will capture",
			Sources: cli.EnvVars("ORAGUIDE_SCHEMA"),
		},
		&cli.StringFlag{
			Name:    "tables",
			Usage:   "LIKE pattern narrowing captured tables (default: all tables in schema)",
			Sources: cli.EnvVars("ORAGUIDE_TABLES"),
		},
	}
}

// collectorConfigFromCmd builds the collector configuration from flags.
func collectorConfigFromCmd(cmd *cli.Command, interval, duration time.Duration) *collector.Config {
	if interval <= 0 {
		interval = defaults.SampleInterval
	}
	if duration <= 0 {
		duration = defaults.CollectionDuration
	}
	return &collector.Config{
		User:           cmd.String("user"),
		Password:       cmd.String("password"),
		Host:           cmd.String("host"),
		Port:           int(cmd.Int("port")),
		Service:        cmd.String("service"),
		Schema:         cmd.String("schema"),
		TablePattern:   cmd.String("tables"),
		SampleInterval: interval,
		Duration:       duration,
	}
}
