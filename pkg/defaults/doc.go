// Package defaults centralizes timeout, sampling, and connection pool
// constants used across oraguide components. Keeping them in one place
// makes the relationships between related values visible (for example,
// a query timeout must fit inside the sampling interval).
package defaults
