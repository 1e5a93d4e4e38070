package advisor

import (
	"reflect"
	"strings"
	"testing"

	"github.com/oraguide/oraguide/pkg/metric"
	"github.com/oraguide/oraguide/pkg/snapshot"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// busySnapshot models a moderately loaded OLTP source.
func busySnapshot() *snapshot.Snapshot {
	snap := snapshot.New()
	snap.CollectionHours = 24
	snap.AvgArchiveFileSizeGb = 1.5
	snap.Facts = snapshot.Facts{
		RedoLogConfigured:  true,
		RedoLogGroups:      2,
		RedoLogSizeGb:      4,
		CapturedTableCount: 25,
		SchemaTableCount:   100,
		SupplementalLogMin: "YES",
		ForceSwitchSeconds: 1800,
		SchemaName:         "SALES",
		TablePattern:       "SALES\\..*",
	}
	snap.Metrics = snapshot.Metrics{
		SwitchRatePerHour:    metric.Statistic{Min: 2, Max: 10, Avg: 5, P95: 8, SampleCount: 144},
		ArchiveRateGbPerHour: metric.Statistic{Min: 1, Max: 20, Avg: 8, P95: 16, SampleCount: 144},
		OldestTxnAgeMinutes:  metric.Statistic{Min: 1, Max: 90, Avg: 20, P95: 45, SampleCount: 144},
		ActiveTxnCount:       metric.Statistic{Min: 5, Max: 200, Avg: 60, P95: 150, SampleCount: 144},
		ArchiveWindowHours:   metric.Statistic{Min: 12, Max: 48, Avg: 30, P95: 46, SampleCount: 144},
		ArchiveDiskUsedGb:    metric.Statistic{Min: 50, Max: 400, Avg: 200, P95: 380, SampleCount: 144},
	}
	return snap
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantVer string
	}{
		{name: "default", opts: nil, wantVer: ""},
		{name: "with version", opts: []Option{WithVersion("v1.2.3")}, wantVer: "v1.2.3"},
		{name: "last option wins", opts: []Option{WithVersion("v1"), WithVersion("v2")}, wantVer: "v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.opts...)
			if got.Version != tt.wantVer {
				t.Errorf("New() version = %v, want %v", got.Version, tt.wantVer)
			}
		})
	}
}

func TestAdvise_NilSnapshot(t *testing.T) {
	if _, err := New().Advise(nil); err == nil {
		t.Error("expected error for nil snapshot")
	}
}

func TestAdvise_BusySnapshot(t *testing.T) {
	rec, err := New().Advise(busySnapshot())
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}

	// Peak switching of 8/hour is excessive: resize from the 16 GB/h peak
	// archive rate and raise the group count to the floor of 4.
	if rec.RedoLogSizeGb != 4 {
		t.Errorf("RedoLogSizeGb = %v, want 4", rec.RedoLogSizeGb)
	}
	if rec.RedoLogGroups != 4 {
		t.Errorf("RedoLogGroups = %v, want 4", rec.RedoLogGroups)
	}

	// p95 transaction lifetime of 45 minutes doubles to 5.4M ms.
	if rec.TransactionRetentionMs != 5_400_000 {
		t.Errorf("TransactionRetentionMs = %v, want 5400000", rec.TransactionRetentionMs)
	}

	// Capture ratio 0.25: small batches and regex filtering with warning.
	if rec.BatchSizeDefault != 5_000 || rec.BatchSizeMax != 10_000 {
		t.Errorf("batch sizes = %d/%d, want 5000/10000", rec.BatchSizeDefault, rec.BatchSizeMax)
	}
	if rec.QueryFilterMode != FilterModeRegex {
		t.Errorf("QueryFilterMode = %q, want regex", rec.QueryFilterMode)
	}
	found := false
	for _, w := range rec.Warnings {
		if contains(w, "regex") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a query filter warning in %v", rec.Warnings)
	}

	// No LOB columns: disabled with the no-LOB rationale and no LOB warning.
	if rec.LobEnabled {
		t.Error("LobEnabled must be false")
	}
	if !contains(rec.LobRationale, "no LOB columns") {
		t.Errorf("LobRationale = %q", rec.LobRationale)
	}
	for _, w := range rec.Warnings {
		if contains(w, "LOB") {
			t.Errorf("unexpected LOB warning: %q", w)
		}
	}

	if rec.ArchiveLogOnlyMode {
		t.Error("ArchiveLogOnlyMode must be false")
	}
}

func TestAdvise_RetentionRisk(t *testing.T) {
	snap := busySnapshot()
	// Long transactions push retention to 5h; archives only cover 3h.
	snap.Metrics.OldestTxnAgeMinutes = metric.Statistic{Min: 1, Max: 300, Avg: 100, P95: 220, SampleCount: 144}
	snap.Metrics.ArchiveWindowHours = metric.Statistic{Min: 3, Max: 10, Avg: 6, P95: 9, SampleCount: 144}
	snap.Metrics.SwitchRatePerHour = metric.Statistic{Min: 2, Max: 6, Avg: 3, P95: 4, SampleCount: 144}

	rec, err := New().Advise(snap)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}

	if rec.ArchiveRetentionHours != 5 {
		t.Fatalf("ArchiveRetentionHours = %d, want 5", rec.ArchiveRetentionHours)
	}

	var risk string
	for _, w := range rec.Warnings {
		if contains(w, "CRITICAL") {
			risk = w
		}
	}
	if risk == "" {
		t.Fatalf("expected a retention risk warning in %v", rec.Warnings)
	}
	// The warning must literally cite the observed window and the
	// recommended retention.
	if !contains(risk, "3.0 hours") || !contains(risk, "5 hours") {
		t.Errorf("retention risk warning %q must cite 3h observed and 5h recommended", risk)
	}
}

func TestAdvise_EmptySnapshotDegradesToFloors(t *testing.T) {
	snap := snapshot.New()
	snap.Facts.SchemaName = "EMPTY"

	rec, err := New().Advise(snap)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}

	if rec.ArchiveRetentionHours < 2 {
		t.Errorf("ArchiveRetentionHours = %d, violates floor of 2", rec.ArchiveRetentionHours)
	}
	if rec.TransactionRetentionMs < 300_000 {
		t.Errorf("TransactionRetentionMs = %d, violates floor of 300000", rec.TransactionRetentionMs)
	}
	if rec.RedoLogGroups < 4 {
		t.Errorf("RedoLogGroups = %d, violates floor of 4", rec.RedoLogGroups)
	}
	if rec.BatchSizeDefault >= rec.BatchSizeMax {
		t.Errorf("batch default %d must be below max %d", rec.BatchSizeDefault, rec.BatchSizeMax)
	}
	if rec.LobEnabled {
		t.Error("LobEnabled must be false")
	}
	// Empty schema: full capture assumed, so no filter and no filter warning.
	if rec.QueryFilterMode != FilterModeNone {
		t.Errorf("QueryFilterMode = %q, want none", rec.QueryFilterMode)
	}
	// No archive window samples: the retention risk check must stay silent
	// rather than comparing against a zero minimum.
	for _, w := range rec.Warnings {
		if contains(w, "CRITICAL") {
			t.Errorf("unexpected retention risk warning on empty snapshot: %q", w)
		}
	}
}

func TestAdvise_HeartbeatFollowsRetention(t *testing.T) {
	snap := snapshot.New()
	snap.Facts.SchemaName = "S"
	// Fast switching keeps the mining bound under the two-hour floor.
	snap.Metrics.SwitchRatePerHour = metric.Statistic{Min: 6, Max: 20, Avg: 10, P95: 12, SampleCount: 24}

	rec, err := New().Advise(snap)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if rec.ArchiveRetentionHours != 2 {
		t.Fatalf("ArchiveRetentionHours = %d, want 2", rec.ArchiveRetentionHours)
	}
	if rec.HeartbeatIntervalMs != 10_000 {
		t.Errorf("HeartbeatIntervalMs = %d, want 10000 at tight retention", rec.HeartbeatIntervalMs)
	}

	busy, err := New().Advise(busySnapshot())
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if busy.ArchiveRetentionHours <= 2 && busy.HeartbeatIntervalMs != 10_000 {
		t.Errorf("HeartbeatIntervalMs = %d inconsistent with retention %dh", busy.HeartbeatIntervalMs, busy.ArchiveRetentionHours)
	}
}

func TestAdvise_Idempotent(t *testing.T) {
	snap := busySnapshot()
	a := New(WithVersion("v1.0.0"))

	first, err := a.Advise(snap)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	second, err := a.Advise(snap)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Advise() is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAdvise_LobColumnsStillDisabled(t *testing.T) {
	snap := busySnapshot()
	snap.Facts.LobColumns = []snapshot.LobColumn{
		{Table: "ORDERS", Column: "NOTES", DataType: "CLOB"},
	}

	rec, err := New().Advise(snap)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}

	if rec.LobEnabled {
		t.Error("LobEnabled must remain false when LOB columns are present")
	}
	var lob string
	for _, w := range rec.Warnings {
		if contains(w, "ORDERS.NOTES") {
			lob = w
		}
	}
	if lob == "" {
		t.Errorf("expected a LOB warning naming ORDERS.NOTES in %v", rec.Warnings)
	}
	// LOB warning is evaluated first.
	if len(rec.Warnings) == 0 || rec.Warnings[0] != lob {
		t.Errorf("LOB warning must be first, got %v", rec.Warnings)
	}
}
