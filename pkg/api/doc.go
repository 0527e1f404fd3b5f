// Package api provides the HTTP API layer for the work order service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with the work order store and route handlers. It owns the
// service identity (name, build version) and the startup sequence: logging,
// store construction, optional demo seeding, and server lifecycle.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//	    "github.com/NVIDIA/workorder-api/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(context.Background(), api.Options{}); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET    /workorders       - List work orders, with optional filters
//   - POST   /workorders       - Create a work order
//   - GET    /workorders/{id}  - Fetch a single work order
//   - PUT    /workorders/{id}  - Update fields of a work order
//   - DELETE /workorders/{id}  - Delete a work order
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via Options.Config, environment variables
// (PORT, LOG_LEVEL, SHUTDOWN_TIMEOUT_SECONDS), or a YAML config file
// loaded by the CLI.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/workorder-api/pkg/api.version=1.0.0'"
package api
