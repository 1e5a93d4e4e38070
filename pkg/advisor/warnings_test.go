package advisor

import (
	"testing"

	"github.com/oraguide/oraguide/pkg/snapshot"
)

func TestLobWarning(t *testing.T) {
	if got := lobWarning(nil); got != "" {
		t.Errorf("expected no warning without LOB columns, got %q", got)
	}

	got := lobWarning([]snapshot.LobColumn{
		{Table: "ORDERS", Column: "NOTES", DataType: "CLOB"},
		{Table: "DOCS", Column: "BODY", DataType: "BLOB"},
	})
	for _, want := range []string{"ORDERS.NOTES (CLOB)", "DOCS.BODY (BLOB)"} {
		if !contains(got, want) {
			t.Errorf("warning %q does not name %q", got, want)
		}
	}
}

func TestQueryFilterWarning(t *testing.T) {
	if got := queryFilterWarning(batchAdvice{FilterMode: FilterModeNone, CaptureRatio: 0.8}); got != "" {
		t.Errorf("expected no warning for mode none, got %q", got)
	}

	got := queryFilterWarning(batchAdvice{FilterMode: FilterModeRegex, CaptureRatio: 0.25})
	if !contains(got, "25%") {
		t.Errorf("warning %q must cite the capture percentage", got)
	}
	if !contains(got, "Monitor") {
		t.Errorf("warning %q must advise monitoring after the change", got)
	}
}

func TestArchiveLagWarning(t *testing.T) {
	tests := []struct {
		name          string
		forceSeconds  int
		minSwitchRate float64
		samples       int
		want          bool
	}{
		{name: "disabled and quiet fires", forceSeconds: 0, minSwitchRate: 1, samples: 24, want: true},
		{name: "disabled but busy does not fire", forceSeconds: 0, minSwitchRate: 3, samples: 24, want: false},
		{name: "already configured does not fire", forceSeconds: 900, minSwitchRate: 1, samples: 24, want: false},
		{name: "no samples does not fire", forceSeconds: 0, minSwitchRate: 0, samples: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := archiveLagWarning(tt.forceSeconds, tt.minSwitchRate, tt.samples)
			if (got != "") != tt.want {
				t.Errorf("archiveLagWarning() = %q, want fired=%v", got, tt.want)
			}
			if tt.want && !contains(got, "1800") {
				t.Errorf("warning %q must recommend 1800 seconds", got)
			}
		})
	}
}

func TestSupplementalLoggingWarning(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: "", want: false},
		{status: "YES", want: false},
		{status: "yes", want: false},
		{status: "IMPLICIT", want: false},
		{status: "NO", want: true},
		{status: "DISABLED", want: true},
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			got := supplementalLoggingWarning(tt.status)
			if (got != "") != tt.want {
				t.Errorf("supplementalLoggingWarning(%q) = %q, want fired=%v", tt.status, got, tt.want)
			}
		})
	}
}

func TestRetentionRiskWarning(t *testing.T) {
	// The observed minimum window is shorter than the recommended retention:
	// the warning must literally cite both values.
	got := retentionRiskWarning(3, 24, 5)
	if got == "" {
		t.Fatal("expected retention risk warning")
	}
	if !contains(got, "3.0 hours") {
		t.Errorf("warning %q must cite the observed 3h window", got)
	}
	if !contains(got, "5 hours") {
		t.Errorf("warning %q must cite the recommended 5h retention", got)
	}
	if !contains(got, "CRITICAL") {
		t.Errorf("warning %q must be phrased as an operational risk", got)
	}

	if got := retentionRiskWarning(6, 24, 5); got != "" {
		t.Errorf("expected no warning when the window covers retention, got %q", got)
	}
	if got := retentionRiskWarning(0, 0, 5); got != "" {
		t.Errorf("expected no warning without samples, got %q", got)
	}
}

func TestCollectWarnings_Order(t *testing.T) {
	snap := snapshot.New()
	snap.Facts = snapshot.Facts{
		SchemaName:         "SALES",
		LobColumns:         []snapshot.LobColumn{{Table: "T", Column: "C", DataType: "CLOB"}},
		ForceSwitchSeconds: 0,
		SupplementalLogMin: "NO",
		CapturedTableCount: 10,
		SchemaTableCount:   100,
	}
	snap.Metrics.SwitchRatePerHour = stat(1, 4, 2, 3, 24)
	snap.Metrics.ArchiveWindowHours = stat(3, 10, 6, 9, 24)

	lob := recommendLobCapture(snap.Facts.LobColumns)
	batch := recommendBatching(10, 100)
	retention := retentionAdvice{Hours: 5}

	warnings := collectWarnings(snap, lob, batch, retention)
	if len(warnings) != 5 {
		t.Fatalf("got %d warnings, want 5: %v", len(warnings), warnings)
	}

	// Evaluation order is part of the output contract.
	checks := []string{"LOB columns", "regex", "archive_lag_target", "supplemental logging", "CRITICAL"}
	for i, substr := range checks {
		if !contains(warnings[i], substr) {
			t.Errorf("warnings[%d] = %q, want it to contain %q", i, warnings[i], substr)
		}
	}
}
