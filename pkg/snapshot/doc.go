// Package snapshot defines the DiagnosticSnapshot: the immutable input to
// the recommendation engine.
//
// A snapshot combines per-metric statistical summaries (see pkg/metric)
// with one-time static facts about the source database (redo log layout,
// LOB columns, table counts, supplemental logging status). It is assembled
// once per report run from freshly collected samples and never mutated
// afterwards.
//
// Units are fixed and carried in field names (hours, minutes, GB, counts);
// any renaming or unit change is a breaking change to the engine's input
// contract.
package snapshot
