package advisor

import (
	"fmt"
	"strings"

	"github.com/oraguide/oraguide/pkg/snapshot"
)

// Warning collector thresholds.
const (
	// quietSwitchRatePerHour: below this minimum switch rate, quiet periods
	// with no forced switching can stall the connector offset.
	quietSwitchRatePerHour = 2.0

	// recommendedForceSwitchSeconds is the archive_lag_target value
	// suggested when forced switching is disabled on a quiet system.
	recommendedForceSwitchSeconds = 1800
)

// collectWarnings evaluates each warning check in a fixed order and returns
// the resulting operator-facing strings. It runs after the policies and may
// read both the snapshot and the already-computed policy outputs.
//
// Order: LOB, query filter, archive lag, supplemental logging, retention risk.
func collectWarnings(snap *snapshot.Snapshot, lob lobAdvice, batch batchAdvice, retention retentionAdvice) []string {
	warnings := make([]string, 0, 5)

	if w := lobWarning(snap.Facts.LobColumns); w != "" {
		warnings = append(warnings, w)
	}
	if w := queryFilterWarning(batch); w != "" {
		warnings = append(warnings, w)
	}
	if w := archiveLagWarning(snap.Facts.ForceSwitchSeconds, snap.Metrics.SwitchRatePerHour.Min, snap.Metrics.SwitchRatePerHour.SampleCount); w != "" {
		warnings = append(warnings, w)
	}
	if w := supplementalLoggingWarning(snap.Facts.SupplementalLogMin); w != "" {
		warnings = append(warnings, w)
	}
	if w := retentionRiskWarning(snap.Metrics.ArchiveWindowHours.Min, snap.Metrics.ArchiveWindowHours.SampleCount, retention.Hours); w != "" {
		warnings = append(warnings, w)
	}

	return warnings
}

// lobWarning fires whenever any LOB column was found, regardless of the
// disabled recommendation, naming every qualifying table/column pair.
func lobWarning(columns []snapshot.LobColumn) string {
	if len(columns) == 0 {
		return ""
	}
	pairs := make([]string, len(columns))
	for i, c := range columns {
		pairs[i] = fmt.Sprintf("%s.%s (%s)", c.Table, c.Column, c.DataType)
	}
	return fmt.Sprintf(
		"LOB columns present in captured tables: %s. LOB capture is recommended off; enabling it pins the mining watermark and increases archive retention pressure.",
		strings.Join(pairs, ", "))
}

// queryFilterWarning fires whenever the filter mode resolves to regex.
func queryFilterWarning(batch batchAdvice) string {
	if batch.FilterMode != FilterModeRegex {
		return ""
	}
	return fmt.Sprintf(
		"only %.0f%% of schema tables are captured; a regex query filter is recommended to reduce mining volume. Monitor connector throughput after applying the change.",
		batch.CaptureRatio*100)
}

// archiveLagWarning fires when forced switching is disabled and the observed
// minimum switch rate indicates quiet periods that can stall the offset.
func archiveLagWarning(forceSwitchSeconds int, minSwitchRate float64, sampleCount int) string {
	if forceSwitchSeconds != 0 || sampleCount == 0 {
		return ""
	}
	if minSwitchRate >= quietSwitchRatePerHour {
		return ""
	}
	return fmt.Sprintf(
		"forced log switching is disabled and the minimum observed switch rate is %.1f/hour; set archive_lag_target to %d seconds so quiet periods cannot stall the connector offset.",
		minSwitchRate, recommendedForceSwitchSeconds)
}

// supplementalLoggingWarning fires when the minimal supplemental logging
// fact is present but not affirmatively enabled. Oracle reports minimal
// supplemental logging as YES or IMPLICIT when on.
func supplementalLoggingWarning(status string) string {
	if status == "" {
		return ""
	}
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "YES", "IMPLICIT":
		return ""
	}
	return fmt.Sprintf(
		"database minimal supplemental logging is %q; the connector requires at least minimal supplemental logging (ALTER DATABASE ADD SUPPLEMENTAL LOG DATA).",
		status)
}

// retentionRiskWarning is the critical check: if archives are already being
// deleted sooner than the recommended retention window, mining sessions will
// eventually request a file that no longer exists.
//
// The comparison is against the recommended retention, not the currently
// configured one; whether the latter was intended is an open product
// question, tracked outside this code.
func retentionRiskWarning(minWindowHours float64, sampleCount, retentionHours int) string {
	if sampleCount == 0 {
		return ""
	}
	if minWindowHours >= float64(retentionHours) {
		return ""
	}
	return fmt.Sprintf(
		"CRITICAL: archive logs were observed covering as little as %.1f hours, but the connector needs %d hours of retention. The current cleanup policy deletes archives before the connector is done with them; this is the primary cause of mining failures on missing log files.",
		minWindowHours, retentionHours)
}
