package collector

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/oraguide/oraguide/pkg/snapshot"
)

// Runner drives a sampling job: every interval it fans out to all
// samplers in parallel and persists what they return.
type Runner struct {
	// Samplers to run on every tick.
	Samplers []Sampler
	// Sink receives the samples from each tick.
	Sink SampleSink
	// Interval between ticks.
	Interval time.Duration
	// Duration is the total collection window.
	Duration time.Duration
}

// Run samples until the collection window closes or the context is
// canceled. A canceled context is a normal early stop, not an error.
// Individual tick failures are logged and counted but do not stop the
// run; a full window with some failed ticks is still a usable sample set.
func (r *Runner) Run(ctx context.Context) error {
	if len(r.Samplers) == 0 {
		return nil
	}

	// The limiter paces ticks even if the ticker fires in bursts after
	// a scheduling stall.
	limiter := rate.NewLimiter(rate.Every(r.Interval), 1)
	deadline := time.Now().Add(r.Duration)

	slog.Info("starting sample collection",
		slog.Duration("interval", r.Interval),
		slog.Duration("duration", r.Duration),
		slog.Int("samplers", len(r.Samplers)))

	ticks := 0
	failures := 0
	for time.Now().Before(deadline) {
		if err := limiter.Wait(ctx); err != nil {
			slog.Info("sample collection stopped", slog.Int("ticks", ticks))
			return nil
		}
		if err := r.tick(ctx); err != nil {
			failures++
			slog.Error("sampling tick failed", slog.String("error", err.Error()))
			samplingTickTotal.WithLabelValues("error").Inc()
		} else {
			samplingTickTotal.WithLabelValues("success").Inc()
		}
		ticks++
	}

	slog.Info("sample collection complete",
		slog.Int("ticks", ticks),
		slog.Int("failures", failures))
	return nil
}

// tick runs all samplers in parallel and saves their combined output.
func (r *Runner) tick(ctx context.Context) error {
	var mu sync.Mutex
	collected := make([]snapshot.Sample, 0, len(r.Samplers)*2)

	g, gctx := errgroup.WithContext(ctx)
	for _, sampler := range r.Samplers {
		g.Go(func() error {
			start := time.Now()
			defer func() {
				samplerDuration.WithLabelValues(sampler.Name()).Observe(time.Since(start).Seconds())
			}()
			samples, err := sampler.Sample(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			collected = append(collected, samples...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return r.Sink.Save(ctx, collected)
}
