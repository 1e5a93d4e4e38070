package snapshot

import (
	"time"

	"github.com/oraguide/oraguide/pkg/metric"
)

// Sample is one raw observation of a named metric.
type Sample struct {
	Name  metric.Name `json:"name" yaml:"name"`
	Value float64     `json:"value" yaml:"value"`
	At    time.Time   `json:"at" yaml:"at"`
}

// Build assembles a Snapshot from raw samples, static facts, and the scalar
// average archive file size. The collection window is derived from the
// sample timestamps; samples with unknown names are ignored.
func Build(samples []Sample, facts Facts, avgArchiveFileSizeGb float64) *Snapshot {
	byName := make(map[metric.Name][]float64, len(metric.Names))
	var first, last time.Time
	for _, s := range samples {
		if _, ok := metric.ParseName(s.Name.String()); !ok {
			continue
		}
		byName[s.Name] = append(byName[s.Name], s.Value)
		if first.IsZero() || s.At.Before(first) {
			first = s.At
		}
		if s.At.After(last) {
			last = s.At
		}
	}

	snap := New()
	snap.Facts = facts
	snap.AvgArchiveFileSizeGb = avgArchiveFileSizeGb
	if !first.IsZero() {
		snap.CollectionHours = last.Sub(first).Hours()
	}

	snap.Metrics = Metrics{
		SwitchRatePerHour:    metric.Summarize(byName[metric.NameSwitchRate]),
		ArchiveRateGbPerHour: metric.Summarize(byName[metric.NameArchiveRate]),
		OldestTxnAgeMinutes:  metric.Summarize(byName[metric.NameOldestTxnAge]),
		ActiveTxnCount:       metric.Summarize(byName[metric.NameActiveTxnCount]),
		ArchiveWindowHours:   metric.Summarize(byName[metric.NameArchiveWindow]),
		ArchiveDiskUsedGb:    metric.Summarize(byName[metric.NameArchiveDiskUsed]),
	}

	return snap
}
