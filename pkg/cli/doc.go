// Package cli implements the command-line interface for the workorderd server binary.
//
// # Overview
//
// The workorderd CLI starts and inspects the work order REST API service. It wires
// configuration from flags, environment variables, and an optional YAML config file
// into the HTTP server chassis.
//
// # Commands
//
// serve - Start the HTTP server:
//
//	workorderd serve [--port PORT] [--address ADDR] [--config FILE] [--seed] [--log-level LEVEL]
//
// Starts the JSON REST API on the configured port (default 8080) with health probes,
// Prometheus metrics, rate limiting, and graceful shutdown on SIGINT/SIGTERM.
//
// version - Print build information:
//
//	workorderd version
//
// Prints name, version, commit, and build date as indented JSON.
//
// # Configuration Precedence
//
// Flags override config file values, which override environment variables,
// which override built-in defaults:
//
//	--port > config file "port" > PORT env > 8080
//
// # Environment Variables
//
//	LOG_LEVEL                 Set logging verbosity (debug, info, warn, error)
//	PORT                      Port to listen on
//	SHUTDOWN_TIMEOUT_SECONDS  Graceful shutdown timeout
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, bind failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/api - service composition (store, routes, server)
//   - pkg/server - HTTP server chassis and middleware
//   - pkg/workorder - work order domain, store, and handlers
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/workorder-api/pkg/api.version=1.0.0'"
package cli
