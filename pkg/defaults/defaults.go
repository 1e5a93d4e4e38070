package defaults

import "time"

// Collector defaults for diagnostic data collection against the source database.
const (
	// QueryTimeout is the default timeout for a single diagnostic query.
	QueryTimeout = 30 * time.Second

	// SampleInterval is the default spacing between metric samples.
	SampleInterval = 10 * time.Minute

	// CollectionDuration is the default length of a collection run.
	// The report layer rejects collections shorter than MinCollectionHours.
	CollectionDuration = 24 * time.Hour

	// MinCollectionHours is the minimum collection window on which the
	// retention and sizing formulas are meaningful.
	MinCollectionHours = 1.0
)

// Connection pool defaults for the Oracle client.
const (
	// PoolMaxOpenConns caps concurrent connections to the source database.
	// Diagnostic sampling is deliberately light-footed.
	PoolMaxOpenConns = 4

	// PoolMaxIdleConns is the number of idle connections kept between samples.
	PoolMaxIdleConns = 1

	// PoolConnMaxLifetime bounds connection reuse.
	PoolConnMaxLifetime = 30 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
