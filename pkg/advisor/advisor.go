package advisor

import (
	"fmt"
	"time"

	"github.com/oraguide/oraguide/pkg/snapshot"
)

// Advisor derives connector configuration recommendations from a diagnostic
// snapshot. It is stateless: identical snapshots always yield identical
// recommendations, and concurrent calls are independent.
type Advisor struct {
	Version string
}

// Option is a functional option for configuring the Advisor.
type Option func(*Advisor)

// WithVersion records the advisor version for reporting.
func WithVersion(version string) Option {
	return func(a *Advisor) {
		a.Version = version
	}
}

// New creates a new Advisor with the provided options.
func New(opts ...Option) *Advisor {
	a := &Advisor{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Advise computes the full recommendation set for the snapshot. Every policy
// degrades to its documented floor or default when inputs are absent, so a
// syntactically valid snapshot never produces an error beyond the nil check.
func (a *Advisor) Advise(snap *snapshot.Snapshot) (*Recommendations, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot cannot be nil")
	}

	start := time.Now()
	defer func() {
		adviseDuration.Observe(time.Since(start).Seconds())
	}()

	redo := recommendRedoLog(snap.Facts, snap.Metrics.SwitchRatePerHour, snap.Metrics.ArchiveRateGbPerHour)
	retention := recommendArchiveRetention(
		snap.Metrics.OldestTxnAgeMinutes,
		snap.Metrics.SwitchRatePerHour,
		snap.Metrics.ArchiveRateGbPerHour,
		snap.AvgArchiveFileSizeGb,
	)
	lob := recommendLobCapture(snap.Facts.LobColumns)
	batch := recommendBatching(snap.Facts.CapturedTableCount, snap.Facts.SchemaTableCount)

	rec := &Recommendations{
		RedoLogSizeGb:          redo.SizeGb,
		RedoLogGroups:          redo.Groups,
		ArchiveRetentionHours:  retention.Hours,
		ArchiveRetentionDiskGb: retention.DiskGb,
		LobEnabled:             lob.Enabled,
		LobRationale:           lob.Rationale,
		TransactionRetentionMs: recommendTransactionRetention(snap.Metrics.OldestTxnAgeMinutes),
		HeartbeatIntervalMs:    recommendHeartbeat(retention.Hours),
		BatchSizeDefault:       batch.SizeDefault,
		BatchSizeMax:           batch.SizeMax,
		MaxRetries:             recommendMaxRetries(snap.AvgArchiveFileSizeGb),
		QueryFilterMode:        batch.FilterMode,
		ArchiveLogOnlyMode:     false,
	}

	// The warning collector runs last; it reads both the snapshot and the
	// computed policy outputs.
	rec.Warnings = collectWarnings(snap, lob, batch, retention)

	adviseTotal.WithLabelValues("success").Inc()
	return rec, nil
}
