// Package logging provides structured logging utilities shared by the server
// and CLI.
//
// It wraps the standard library slog package with service defaults: JSON
// output to stderr, module and version context attributes, LOG_LEVEL
// environment configuration, and source location tracking for debug logs.
//
// Set the default logger early in main:
//
//	logging.SetDefaultStructuredLogger("workorder-api", version)
//	slog.Info("server starting", "port", 8080)
//
// The LOG_LEVEL environment variable (debug, info, warn, error;
// case-insensitive) controls verbosity and defaults to info.
package logging
