// Package api provides the HTTP API layer for the advisory service.
//
// This package acts as a thin wrapper around the reusable pkg/server
// package, configuring it with the recommendation route. The API server
// only runs the pure advisory engine; sample collection and cleanup
// against a source database are CLI operations.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//
//	    "github.com/oraguide/oraguide/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST /v1/recommendations - Compute recommendations from a
//     diagnostic snapshot JSON body
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - SHUTDOWN_TIMEOUT_SECONDS: Graceful shutdown window
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/oraguide/oraguide/pkg/api.version=1.0.0'"
package api
