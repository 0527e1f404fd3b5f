package api

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/workorder-api/pkg/logging"
	"github.com/NVIDIA/workorder-api/pkg/server"
	"github.com/NVIDIA/workorder-api/pkg/workorder"
)

const (
	name           = "workorder-api"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/workorder-api/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Options controls the composition of the service.
type Options struct {
	// Config is the server configuration; nil means defaults.
	Config *server.Config

	// Seed inserts the demo work orders at startup.
	Seed bool

	// LogLevel overrides the LOG_LEVEL environment variable when non-empty.
	LogLevel string
}

// Serve starts the API server and blocks until shutdown. It configures
// logging, builds the store and routes, and handles graceful shutdown.
// Returns an error if the server fails to start, which for this service
// means inability to bind the listening port.
func Serve(ctx context.Context, opts Options) error {
	if opts.LogLevel != "" {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, opts.LogLevel)
	} else {
		logging.SetDefaultStructuredLogger(name, version)
	}
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	store := workorder.NewStore()
	if opts.Seed {
		workorder.Seed(store)
		slog.Info("seeded demo work orders", "count", store.Len())
	}

	h := workorder.NewHandler(store)

	s := server.New(
		server.WithConfig(opts.Config),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// Version returns the build version information.
func Version() (string, string, string) {
	return version, commit, date
}
