// Package collector gathers diagnostic data from a source Oracle
// database ahead of connector sizing analysis.
//
// # Overview
//
// A collection run has three phases. Collect connects to the database,
// creates a working table for samples, and reads the redo, archive, and
// transaction views on a fixed interval for a configured window,
// fanning out to all samplers in parallel on every tick. BuildSnapshot
// loads the persisted samples, queries the point-in-time configuration
// facts, and assembles a diagnostic snapshot for the advisor. Cleanup
// drops the working table.
//
// Collections shorter than one hour are rejected at snapshot build
// time since the sizing formulas are not meaningful on sub-hour
// sample sets.
//
// # Usage
//
//	c, err := collector.New(&collector.Config{
//		User:    "oraguide",
//		Host:    "db.example.com",
//		Port:    1521,
//		Service: "ORCLPDB1",
//		Schema:  "INVENTORY",
//	})
//	if err != nil {
//		return err
//	}
//	if err := c.Collect(ctx); err != nil {
//		return err
//	}
//	snap, err := c.BuildSnapshot(ctx)
package collector
