// Package metric defines the fixed set of sampled diagnostic quantities and
// their statistical summaries.
//
// Each metric has a fixed physical unit that is part of the input contract:
// switch rate in switches per hour, archive generation in GB per hour,
// transaction age in minutes, archive window in hours, disk use in GB.
// Renaming a metric or changing its unit is a breaking change for the
// recommendation engine.
//
// Summarize aggregates raw samples into a Statistic using nearest-rank p95,
// which guarantees the p95 lies within [min, max] for any sample count.
package metric
