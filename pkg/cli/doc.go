// Package cli implements the oraguide command line interface.
//
// # Commands
//
//   - collect: sample diagnostic metrics from the source database into
//     an ORAGUIDE_SAMPLES working table
//   - report: assemble a snapshot (from the database or a file), run
//     the advisory engine, and render the operator report, connector
//     properties, or raw recommendations
//   - recommend: run the engine over a saved snapshot file only
//   - cleanup: drop the working table
//
// Connection settings come from flags or ORAGUIDE_DB_* environment
// variables; the log level from --log-level or LOG_LEVEL.
package cli
