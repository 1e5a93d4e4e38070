// Package advisor derives connector configuration recommendations from a
// diagnostic snapshot of the source database.
//
// # Overview
//
// The engine is a pure, synchronous computation: given an immutable
// snapshot (pkg/snapshot), it returns a Recommendations value covering redo
// log sizing, archive retention, LOB capture, transaction retention,
// heartbeat interval, batch sizing, query filtering, retry budget, and an
// ordered list of operator warnings. There is no I/O, no clock dependency,
// and no shared state; identical inputs yield identical outputs.
//
// # Policies
//
// Each recommendation is computed by an independent policy function that
// takes only the slice of the snapshot it needs:
//
//   - redo log sizing: keeps the current size unless peak switching exceeds
//     6/hour, then resizes from the peak archive generation rate
//   - archive retention: ceiling in hours of the maximum of three
//     minute-denominated lower bounds (transaction lifetime, mining lag,
//     two-hour floor)
//   - LOB capture: always disabled; the rationale and warning carry the
//     detection result
//   - transaction retention: twice the p95 transaction lifetime, floored at
//     five minutes
//   - heartbeat, batching, query filter, retries: threshold selections on
//     retention, capture ratio, and archive file size
//
// The warning collector runs after the policies and cross-checks the
// snapshot against the computed outputs (for example, it compares the
// observed archive window against the recommended retention).
//
// # Degradation
//
// No policy errors on missing or zero data: absent metrics reduce every
// formula to its documented floor or default. Guaranteed invariants for any
// valid snapshot:
//
//   - ArchiveRetentionHours >= 2
//   - TransactionRetentionMs >= 300000
//   - RedoLogGroups >= 4
//   - BatchSizeDefault < BatchSizeMax
//   - LobEnabled == false
//
// # Usage
//
//	a := advisor.New(advisor.WithVersion("v1.0.0"))
//	rec, err := a.Advise(snap)
//	if err != nil {
//	    log.Fatalf("advise failed: %v", err)
//	}
//	fmt.Printf("retention: %dh, warnings: %d\n",
//	    rec.ArchiveRetentionHours, len(rec.Warnings))
package advisor
