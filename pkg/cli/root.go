/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/workorder-api/pkg/api"
)

const name = "workorderd"

func rootCmd() *cli.Command {
	version, commit, date := api.Version()
	return &cli.Command{
		Name:  name,
		Usage: "Work order management API server",
		Description: fmt.Sprintf(`%s - Work order management API server

Version: %s
Commit:  %s
Built:   %s

Serves a JSON REST API for managing vehicle work orders:

serve   - starts the HTTP server with health probes, metrics, and
          graceful shutdown on SIGINT/SIGTERM.
version - prints build version information.`, name, version, commit, date),
		Commands: []*cli.Command{
			serveCmd(),
			versionCmd(),
		},
	}
}

// Execute runs the root command with signal-based cancellation.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
