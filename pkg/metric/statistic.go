package metric

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Name identifies one of the fixed quantities the collector samples.
// The unit of each metric is part of its contract and never changes.
type Name string

const (
	// NameSwitchRate is the redo log switch rate, in switches per hour.
	NameSwitchRate Name = "switch-rate"
	// NameArchiveRate is the archive log generation rate, in GB per hour.
	NameArchiveRate Name = "archive-rate"
	// NameOldestTxnAge is the age of the oldest active transaction, in minutes.
	NameOldestTxnAge Name = "oldest-txn-age"
	// NameActiveTxnCount is the number of active transactions.
	NameActiveTxnCount Name = "active-txn-count"
	// NameArchiveWindow is the span of archive logs still on disk, in hours.
	NameArchiveWindow Name = "archive-window"
	// NameArchiveDiskUsed is the archive destination disk usage, in GB.
	NameArchiveDiskUsed Name = "archive-disk-used"
)

// Names is the list of all sampled metrics.
var Names = []Name{
	NameSwitchRate,
	NameArchiveRate,
	NameOldestTxnAge,
	NameActiveTxnCount,
	NameArchiveWindow,
	NameArchiveDiskUsed,
}

// String returns the string representation of the metric Name.
func (n Name) String() string {
	return string(n)
}

// ParseName parses a string into a metric Name.
// Returns the Name and true if parsing succeeds, or empty Name and false otherwise.
func ParseName(s string) (Name, bool) {
	for _, n := range Names {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

// Statistic summarizes one repeatedly-sampled quantity over the collection
// window. All values share the metric's fixed unit.
type Statistic struct {
	Min         float64 `json:"min" yaml:"min"`
	Max         float64 `json:"max" yaml:"max"`
	Avg         float64 `json:"avg" yaml:"avg"`
	P95         float64 `json:"p95" yaml:"p95"`
	SampleCount int     `json:"samples" yaml:"samples"`
}

// Summarize aggregates raw samples into a Statistic. The p95 is computed by
// nearest rank over the sorted samples, which keeps it inside [min, max] for
// any sample count. An empty input yields the zero Statistic.
func Summarize(samples []float64) Statistic {
	if len(samples) == 0 {
		return Statistic{}
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	rank := int(math.Ceil(0.95*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}

	return Statistic{
		Min:         sorted[0],
		Max:         sorted[len(sorted)-1],
		Avg:         sum / float64(len(sorted)),
		P95:         sorted[rank],
		SampleCount: len(sorted),
	}
}

// HasSamples reports whether the statistic was computed from at least one sample.
func (s Statistic) HasSamples() bool {
	return s.SampleCount > 0
}

// Validate checks the aggregator invariants: min <= avg <= max, and p95
// within [min, max]. The zero Statistic (no samples) is always valid.
func (s Statistic) Validate() error {
	if s.SampleCount == 0 {
		return nil
	}
	if s.SampleCount < 0 {
		return errors.New("sample count cannot be negative")
	}
	if s.Min > s.Max {
		return fmt.Errorf("min %v exceeds max %v", s.Min, s.Max)
	}
	if s.Avg < s.Min || s.Avg > s.Max {
		return fmt.Errorf("avg %v outside [%v, %v]", s.Avg, s.Min, s.Max)
	}
	if s.P95 < s.Min || s.P95 > s.Max {
		return fmt.Errorf("p95 %v outside [%v, %v]", s.P95, s.Min, s.Max)
	}
	return nil
}
