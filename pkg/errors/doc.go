// Package errors provides structured error types shared across oraguide
// components. Errors carry a classification code for programmatic handling,
// a human-readable message, an optional wrapped cause, and optional context
// for debugging. All types support errors.Is and errors.As.
package errors
