// Package server provides a reusable HTTP server with the middleware,
// health, and metrics plumbing shared by the advisory API.
//
// # Overview
//
// The server wires application handlers (registered by path via
// WithHandler) behind a standard middleware chain: Prometheus request
// metrics, request ID propagation, panic recovery, token-bucket rate
// limiting, and debug request logging. System endpoints (/health,
// /ready, /metrics and the default route) bypass rate limiting.
//
// # Usage
//
//	s := server.New(
//		server.WithName("oraguided"),
//		server.WithVersion("1.0.0"),
//		server.WithHandler(map[string]http.HandlerFunc{
//			"/v1/recommendations": handler,
//		}),
//	)
//	if err := s.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// Run blocks until SIGINT or SIGTERM, then drains connections within
// the configured shutdown timeout.
//
// # Configuration
//
// Defaults come from the environment: PORT overrides the listen port
// and SHUTDOWN_TIMEOUT_SECONDS the drain window. Everything else is
// set programmatically through options or NewWithConfig.
package server
