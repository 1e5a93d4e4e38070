package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/oraguide/oraguide/pkg/defaults"
	"github.com/oraguide/oraguide/pkg/errors"
	"github.com/oraguide/oraguide/pkg/snapshot"
)

// Collector orchestrates the diagnostic phases against one source
// database: collect samples, build a snapshot, clean up.
type Collector struct {
	cfg *Config
}

// New creates a Collector for the given configuration.
func New(cfg *Config) (*Collector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Collector{cfg: cfg}, nil
}

// Collect runs the full sampling job: ensures the working table exists,
// then samples on the configured interval for the configured duration.
func (c *Collector) Collect(ctx context.Context) error {
	start := time.Now()
	db, err := Connect(ctx, c.cfg)
	if err != nil {
		collectionTotal.WithLabelValues("error").Inc()
		return err
	}
	defer db.Close()

	store := NewStore(db)
	if err := store.EnsureTable(ctx); err != nil {
		collectionTotal.WithLabelValues("error").Inc()
		return err
	}

	runner := &Runner{
		Samplers: AllSamplers(NewDefaultFactory(db)),
		Sink:     store,
		Interval: c.cfg.SampleInterval,
		Duration: c.cfg.Duration,
	}
	if err := runner.Run(ctx); err != nil {
		collectionTotal.WithLabelValues("error").Inc()
		return err
	}

	collectionDuration.Observe(time.Since(start).Seconds())
	collectionTotal.WithLabelValues("success").Inc()
	return nil
}

// BuildSnapshot loads the persisted samples, collects the static facts,
// and assembles a snapshot. Collections shorter than one hour are
// rejected here; the sizing formulas are not meaningful on sub-hour
// sample sets.
func (c *Collector) BuildSnapshot(ctx context.Context) (*snapshot.Snapshot, error) {
	db, err := Connect(ctx, c.cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	store := NewStore(db)
	samples, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	facts, err := CollectFacts(ctx, db, c.cfg)
	if err != nil {
		return nil, err
	}
	avgFileGb, err := CollectAvgArchiveFileSizeGb(ctx, db)
	if err != nil {
		return nil, err
	}

	snap := snapshot.Build(samples, facts, avgFileGb)
	if snap.CollectionHours < defaults.MinCollectionHours {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidSnapshot,
			"collection window too short for sizing analysis",
			map[string]any{
				"collectedHours": snap.CollectionHours,
				"requiredHours":  defaults.MinCollectionHours,
			})
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	slog.Info("built diagnostic snapshot",
		slog.String("id", snap.ID),
		slog.Float64("collectionHours", snap.CollectionHours),
		slog.Int("samples", len(samples)))
	return snap, nil
}

// Cleanup drops the working table. Safe to call when nothing was
// collected.
func (c *Collector) Cleanup(ctx context.Context) error {
	db, err := Connect(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	return NewStore(db).Drop(ctx)
}
