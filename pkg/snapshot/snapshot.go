package snapshot

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oraguide/oraguide/pkg/metric"
)

// Metrics holds the statistical summaries of every sampled quantity.
// Field names carry the unit to keep conversions explicit downstream.
type Metrics struct {
	// SwitchRatePerHour is the observed redo log switch rate, switches/hour.
	SwitchRatePerHour metric.Statistic `json:"switchRatePerHour" yaml:"switchRatePerHour"`

	// ArchiveRateGbPerHour is the archive log generation rate, GB/hour.
	ArchiveRateGbPerHour metric.Statistic `json:"archiveRateGbPerHour" yaml:"archiveRateGbPerHour"`

	// OldestTxnAgeMinutes is the age of the oldest active transaction, minutes.
	OldestTxnAgeMinutes metric.Statistic `json:"oldestTxnAgeMinutes" yaml:"oldestTxnAgeMinutes"`

	// ActiveTxnCount is the number of concurrently active transactions.
	ActiveTxnCount metric.Statistic `json:"activeTxnCount" yaml:"activeTxnCount"`

	// ArchiveWindowHours is the span of archive logs still present on disk, hours.
	ArchiveWindowHours metric.Statistic `json:"archiveWindowHours" yaml:"archiveWindowHours"`

	// ArchiveDiskUsedGb is the archive destination disk usage, GB.
	ArchiveDiskUsedGb metric.Statistic `json:"archiveDiskUsedGb" yaml:"archiveDiskUsedGb"`
}

// LobColumn identifies one LOB-typed column in a captured table.
type LobColumn struct {
	Table    string `json:"table" yaml:"table"`
	Column   string `json:"column" yaml:"column"`
	DataType string `json:"dataType" yaml:"dataType"`
}

// Facts holds the one-time static configuration facts read from the source
// database at collection time.
type Facts struct {
	// RedoLogConfigured reports whether redo log configuration rows were
	// readable. When false the sizing policy assumes its baseline.
	RedoLogConfigured bool `json:"redoLogConfigured" yaml:"redoLogConfigured"`

	// RedoLogGroups is the current redo log group count.
	RedoLogGroups int `json:"redoLogGroups" yaml:"redoLogGroups"`

	// RedoLogSizeGb is the current per-group redo log size, GB.
	RedoLogSizeGb float64 `json:"redoLogSizeGb" yaml:"redoLogSizeGb"`

	// LobColumns lists LOB-typed columns found in captured tables.
	LobColumns []LobColumn `json:"lobColumns,omitempty" yaml:"lobColumns,omitempty"`

	// CapturedTableCount is the number of tables selected for capture.
	CapturedTableCount int `json:"capturedTableCount" yaml:"capturedTableCount"`

	// SchemaTableCount is the total number of tables in the captured schema.
	SchemaTableCount int `json:"schemaTableCount" yaml:"schemaTableCount"`

	// SupplementalLogMin is the database-level minimal supplemental logging
	// status as reported by the source (e.g., YES, NO, IMPLICIT). Empty when
	// the fact could not be read.
	SupplementalLogMin string `json:"supplementalLogMin,omitempty" yaml:"supplementalLogMin,omitempty"`

	// ForceSwitchSeconds is the configured forced log switch interval
	// (archive_lag_target). Zero means disabled.
	ForceSwitchSeconds int `json:"forceSwitchSeconds" yaml:"forceSwitchSeconds"`

	// MaxStringSize describes the maximum in-row data size setting.
	MaxStringSize string `json:"maxStringSize,omitempty" yaml:"maxStringSize,omitempty"`

	// SchemaName is the captured schema.
	SchemaName string `json:"schemaName" yaml:"schemaName"`

	// TablePattern is the captured table pattern.
	TablePattern string `json:"tablePattern,omitempty" yaml:"tablePattern,omitempty"`
}

// Snapshot is the immutable input to the recommendation engine: per-metric
// statistical summaries plus static facts, collected over a finite window.
// It is constructed once per report run and never mutated afterwards.
type Snapshot struct {
	// ID identifies the collection run this snapshot was built from.
	ID string `json:"id" yaml:"id"`

	// CollectedAt is when the snapshot was assembled. Stamped by the
	// collection layer; the engine itself never reads the clock.
	CollectedAt time.Time `json:"collectedAt" yaml:"collectedAt"`

	// CollectionHours is the length of the sampling window, hours.
	CollectionHours float64 `json:"collectionHours" yaml:"collectionHours"`

	// AvgArchiveFileSizeGb is the average archived log file size, GB.
	AvgArchiveFileSizeGb float64 `json:"avgArchiveFileSizeGb" yaml:"avgArchiveFileSizeGb"`

	Metrics Metrics `json:"metrics" yaml:"metrics"`
	Facts   Facts   `json:"facts" yaml:"facts"`
}

// New creates an empty Snapshot with a fresh ID and timestamp.
func New() *Snapshot {
	return &Snapshot{
		ID:          uuid.New().String(),
		CollectedAt: time.Now().UTC(),
	}
}

// Validate checks the snapshot's structural invariants: every statistic
// must satisfy the aggregator contract and the captured schema must be named.
// It does not enforce the minimum collection window; that is a report-layer
// concern.
func (s *Snapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("snapshot cannot be nil")
	}
	if s.Facts.SchemaName == "" {
		return fmt.Errorf("captured schema name cannot be empty")
	}

	stats := map[metric.Name]metric.Statistic{
		metric.NameSwitchRate:      s.Metrics.SwitchRatePerHour,
		metric.NameArchiveRate:     s.Metrics.ArchiveRateGbPerHour,
		metric.NameOldestTxnAge:    s.Metrics.OldestTxnAgeMinutes,
		metric.NameActiveTxnCount:  s.Metrics.ActiveTxnCount,
		metric.NameArchiveWindow:   s.Metrics.ArchiveWindowHours,
		metric.NameArchiveDiskUsed: s.Metrics.ArchiveDiskUsedGb,
	}
	for name, stat := range stats {
		if err := stat.Validate(); err != nil {
			return fmt.Errorf("metric %s: %w", name, err)
		}
	}

	if s.CollectionHours < 0 {
		return fmt.Errorf("collection hours cannot be negative")
	}
	if s.AvgArchiveFileSizeGb < 0 {
		return fmt.Errorf("average archive file size cannot be negative")
	}
	return nil
}
