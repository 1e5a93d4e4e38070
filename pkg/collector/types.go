package collector

import (
	"context"
	"strings"
	"time"

	"github.com/oraguide/oraguide/pkg/defaults"
	"github.com/oraguide/oraguide/pkg/errors"
	"github.com/oraguide/oraguide/pkg/snapshot"
)

// Sampler takes one point-in-time reading of one or more metrics.
// Implementations must be safe for repeated calls on a sampling schedule.
type Sampler interface {
	// Name identifies the sampler in logs and metrics.
	Name() string
	// Sample reads the current values from the database.
	Sample(ctx context.Context) ([]snapshot.Sample, error)
}

// SampleSink receives samples as they are taken. The database-backed
// store implements this, tests substitute an in-memory sink.
type SampleSink interface {
	Save(ctx context.Context, samples []snapshot.Sample) error
}

// Config holds connection and collection settings for a diagnostic run.
type Config struct {
	// User is the database account used for diagnostic queries.
	User string
	// Password for the database account.
	Password string
	// Host of the database listener.
	Host string
	// Port of the database listener.
	Port int
	// Service is the database service name.
	Service string

	// Schema is the owner of the tables the connector will capture.
	Schema string
	// TablePattern narrows captured tables with a LIKE pattern.
	// Empty means all tables in the schema.
	TablePattern string

	// SampleInterval is the time between metric readings.
	SampleInterval time.Duration
	// Duration is the total collection window.
	Duration time.Duration
}

// Validate checks that the configuration is complete enough to connect
// and that the collection window can produce a usable snapshot.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "collector config is required")
	}
	if strings.TrimSpace(c.User) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "database user is required")
	}
	if strings.TrimSpace(c.Host) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "database port out of range",
			map[string]any{"port": c.Port})
	}
	if strings.TrimSpace(c.Service) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "database service name is required")
	}
	if strings.TrimSpace(c.Schema) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "schema name is required")
	}
	if c.SampleInterval <= 0 {
		c.SampleInterval = defaults.SampleInterval
	}
	if c.Duration <= 0 {
		c.Duration = defaults.CollectionDuration
	}
	if c.Duration < c.SampleInterval {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "collection duration shorter than sample interval",
			map[string]any{"duration": c.Duration.String(), "interval": c.SampleInterval.String()})
	}
	return nil
}

// tablePatternOrAll returns the LIKE pattern, defaulting to all tables.
func (c *Config) tablePatternOrAll() string {
	if strings.TrimSpace(c.TablePattern) == "" {
		return "%"
	}
	return c.TablePattern
}
