/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/workorder-api/pkg/api"
	"github.com/NVIDIA/workorder-api/pkg/server"
)

// serveCmdOptions holds parsed options for the serve command.
type serveCmdOptions struct {
	configFilePath string
	address        string
	port           int
	seed           bool
	logLevel       string
}

// parseServeCmdOptions parses and validates command options.
func parseServeCmdOptions(cmd *cli.Command) (*serveCmdOptions, error) {
	opts := &serveCmdOptions{
		configFilePath: cmd.String("config"),
		address:        cmd.String("address"),
		port:           int(cmd.Int("port")),
		seed:           cmd.Bool("seed"),
		logLevel:       cmd.String("log-level"),
	}

	if cmd.IsSet("port") && (opts.port < 1 || opts.port > 65535) {
		return nil, fmt.Errorf("invalid --port value: %d (must be 1-65535)", opts.port)
	}

	return opts, nil
}

// buildConfig resolves the server configuration from defaults, an optional
// YAML config file, and explicit flags (highest precedence).
func buildConfig(cmd *cli.Command, opts *serveCmdOptions) (*server.Config, error) {
	cfg := server.NewConfig()
	if opts.configFilePath != "" {
		var err error
		cfg, err = server.LoadConfig(opts.configFilePath)
		if err != nil {
			return nil, err
		}
	}

	if cmd.IsSet("address") {
		cfg.Address = opts.address
	}
	if cmd.IsSet("port") {
		cfg.Port = opts.port
	}

	return cfg, nil
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Start the work order API server",
		Description: `Starts the HTTP server exposing the work order REST API.

# Endpoints

  - GET    /workorders       list work orders (filter by status, licensePlate, dueDate)
  - POST   /workorders       create a work order
  - GET    /workorders/{id}  fetch a single work order
  - PUT    /workorders/{id}  update fields of a work order
  - DELETE /workorders/{id}  delete a work order
  - GET    /health           liveness probe
  - GET    /ready            readiness probe
  - GET    /metrics          Prometheus metrics

# Examples

Start with defaults (port 8080):
  workorderd serve

Start on a custom port with demo data:
  workorderd serve --port 9090 --seed

Start with a YAML config file:
  workorderd serve --config /etc/workorder/config.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file (flags override file values)",
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to bind to (default all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides config file and PORT env)",
			},
			&cli.BoolFlag{
				Name:  "seed",
				Usage: "Insert demo work orders at startup",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseServeCmdOptions(cmd)
			if err != nil {
				return err
			}

			cfg, err := buildConfig(cmd, opts)
			if err != nil {
				return err
			}

			return api.Serve(ctx, api.Options{
				Config:   cfg,
				Seed:     opts.seed,
				LogLevel: opts.logLevel,
			})
		},
	}
}
