package advisor

import (
	"fmt"
	"math"

	"github.com/oraguide/oraguide/pkg/metric"
	"github.com/oraguide/oraguide/pkg/snapshot"
)

// Policy constants. Values are part of the external recommendation contract.
const (
	// Redo log sizing targets 3-5 switches/hour at peak; only excessive
	// switching (above maxAcceptableSwitchesPerHour) triggers resizing.
	maxAcceptableSwitchesPerHour = 6.0
	redoSizeDivisorGbPerHour     = 4.0
	minRedoLogSizeGb             = 2.0
	baselineRedoLogSizeGb        = 4.0
	minRedoLogGroups             = 4

	// Archive retention bounds, all in minutes.
	retentionBufferMinutes        = 60.0
	sessionOverheadMinutes        = 15.0
	defaultSwitchIntervalMinutes  = 30.0
	minRetentionMinutes           = 120.0
	switchCyclesCovered           = 3.0
	archiveWriteThroughputGbPerSec = 0.5

	// Transaction retention floor: five minutes in milliseconds.
	minTransactionRetentionMs = 300_000
	transactionLifetimeFactor = 2

	// Heartbeat interval thresholds.
	heartbeatTightRetentionHours = 2
	heartbeatFastMs              = 10_000
	heartbeatSlowMs              = 30_000

	// Batch sizing and query filtering by capture ratio.
	smallCaptureRatio   = 0.3
	regexFilterRatio    = 0.5
	batchDefaultSmall   = 5_000
	batchMaxSmall       = 10_000
	batchDefaultLarge   = 10_000
	batchMaxLarge       = 50_000

	// Retry budget by average archive file size.
	largeArchiveFileGb = 5.0
	maxRetriesLarge    = 30
	maxRetriesDefault  = 10
)

// redoLogAdvice is the redo log sizing policy output.
type redoLogAdvice struct {
	SizeGb float64
	Groups int
}

// recommendRedoLog sizes redo logs from the current configuration and the
// observed switch and archive generation rates. Sizes are only recomputed
// when peak switching exceeds the acceptable band; fewer, larger switches
// are left alone.
func recommendRedoLog(facts snapshot.Facts, switchRate, archiveRate metric.Statistic) redoLogAdvice {
	currentSizeGb := facts.RedoLogSizeGb
	currentGroups := facts.RedoLogGroups
	if !facts.RedoLogConfigured {
		currentSizeGb = baselineRedoLogSizeGb
		currentGroups = 0
	}

	sizeGb := currentSizeGb
	if switchRate.P95 > maxAcceptableSwitchesPerHour {
		peakArchiveGbPerHour := archiveRate.P95
		if peakArchiveGbPerHour == 0 {
			peakArchiveGbPerHour = archiveRate.Max
		}
		sizeGb = math.Ceil(peakArchiveGbPerHour / redoSizeDivisorGbPerHour)
		if sizeGb < minRedoLogSizeGb {
			sizeGb = minRedoLogSizeGb
		}
	}

	groups := currentGroups
	if groups < minRedoLogGroups {
		groups = minRedoLogGroups
	}

	return redoLogAdvice{SizeGb: sizeGb, Groups: groups}
}

// retentionAdvice is the archive retention policy output. The minute bounds
// are retained for the report, which explains which bound dominated.
type retentionAdvice struct {
	Hours  int
	DiskGb float64

	// Lower bounds, minutes.
	TxnBoundMinutes    float64
	MiningBoundMinutes float64
	FloorMinutes       float64
}

// recommendArchiveRetention computes the archive retention window as the
// ceiling in hours of the maximum of three minute-denominated lower bounds:
// the longest observed open transaction plus a buffer, three switch cycles
// of mining lag plus write and session overhead plus a buffer, and an
// absolute floor of two hours.
func recommendArchiveRetention(oldestTxnAgeMinutes, switchRate, archiveRate metric.Statistic, avgArchiveFileSizeGb float64) retentionAdvice {
	txnBound := oldestTxnAgeMinutes.P95 + retentionBufferMinutes

	switchIntervalMinutes := defaultSwitchIntervalMinutes
	if switchRate.P95 > 0 {
		switchIntervalMinutes = 60.0 / switchRate.P95
	}
	archiveWriteMinutes := avgArchiveFileSizeGb / archiveWriteThroughputGbPerSec
	miningBound := switchCyclesCovered*switchIntervalMinutes + archiveWriteMinutes + sessionOverheadMinutes + retentionBufferMinutes

	maxMinutes := math.Max(txnBound, math.Max(miningBound, minRetentionMinutes))
	hours := int(math.Ceil(maxMinutes / 60.0))

	return retentionAdvice{
		Hours:              hours,
		DiskGb:             archiveRate.P95 * float64(hours),
		TxnBoundMinutes:    txnBound,
		MiningBoundMinutes: miningBound,
		FloorMinutes:       minRetentionMinutes,
	}
}

// lobAdvice is the LOB capture policy output.
type lobAdvice struct {
	Enabled   bool
	Rationale string
}

// recommendLobCapture always disables LOB capture: enabling it pins the
// mining watermark further back and increases retention pressure. When LOB
// columns exist the rationale names the count and the condition under which
// enabling would be acceptable; the corresponding warning is emitted by the
// warning collector.
func recommendLobCapture(lobColumns []snapshot.LobColumn) lobAdvice {
	if len(lobColumns) == 0 {
		return lobAdvice{
			Enabled:   false,
			Rationale: "no LOB columns detected in captured tables; LOB capture is unnecessary",
		}
	}
	return lobAdvice{
		Enabled: false,
		Rationale: fmt.Sprintf(
			"%d LOB column(s) detected in captured tables; keep LOB capture disabled unless archive retention is raised at least 1 hour above the recommended value",
			len(lobColumns)),
	}
}

// recommendTransactionRetention doubles the observed p95 transaction
// lifetime, uncapped, with a five-minute floor. Falling below the longest
// tracked transaction would force the watermark to abandon a live
// transaction.
func recommendTransactionRetention(oldestTxnAgeMinutes metric.Statistic) int64 {
	ms := int64(oldestTxnAgeMinutes.P95 * transactionLifetimeFactor * 60_000)
	if ms < minTransactionRetentionMs {
		return minTransactionRetentionMs
	}
	return ms
}

// recommendHeartbeat picks the offset-advancement interval from the
// computed retention window: tighter windows demand more frequent watermark
// advancement to avoid offset staleness.
func recommendHeartbeat(archiveRetentionHours int) int64 {
	if archiveRetentionHours <= heartbeatTightRetentionHours {
		return heartbeatFastMs
	}
	return heartbeatSlowMs
}

// batchAdvice is the batch sizing and query filter policy output.
type batchAdvice struct {
	SizeDefault  int
	SizeMax      int
	FilterMode   FilterMode
	CaptureRatio float64
}

// recommendBatching sizes mining batches and selects the query filter mode
// from the capture ratio. A schema with no tables is treated as fully
// captured (ratio 1) to avoid division by zero.
func recommendBatching(capturedTableCount, schemaTableCount int) batchAdvice {
	ratio := 1.0
	if schemaTableCount > 0 {
		ratio = float64(capturedTableCount) / float64(schemaTableCount)
	}

	adv := batchAdvice{CaptureRatio: ratio}
	if ratio < smallCaptureRatio {
		adv.SizeDefault = batchDefaultSmall
		adv.SizeMax = batchMaxSmall
	} else {
		adv.SizeDefault = batchDefaultLarge
		adv.SizeMax = batchMaxLarge
	}

	adv.FilterMode = FilterModeNone
	if ratio < regexFilterRatio {
		adv.FilterMode = FilterModeRegex
	}
	return adv
}

// recommendMaxRetries sets the transient-failure retry budget. Larger
// archive files take longer to materialize, so reads against them need more
// retries before giving up.
func recommendMaxRetries(avgArchiveFileSizeGb float64) int {
	if avgArchiveFileSizeGb > largeArchiveFileGb {
		return maxRetriesLarge
	}
	return maxRetriesDefault
}
