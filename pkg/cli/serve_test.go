// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/workorder-api/pkg/server"
)

// runServe parses the given serve arguments without starting a server.
func runServe(t *testing.T, args ...string) (*serveCmdOptions, *server.Config, error) {
	t.Helper()

	var (
		opts *serveCmdOptions
		cfg  *server.Config
	)

	sc := serveCmd()
	sc.Action = func(_ context.Context, cmd *cli.Command) error {
		var err error
		opts, err = parseServeCmdOptions(cmd)
		if err != nil {
			return err
		}
		cfg, err = buildConfig(cmd, opts)
		return err
	}

	root := &cli.Command{Name: "test", Commands: []*cli.Command{sc}}
	err := root.Run(context.Background(), append([]string{"test", "serve"}, args...))
	return opts, cfg, err
}

func TestServeDefaults(t *testing.T) {
	opts, cfg, err := runServe(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.seed {
		t.Error("expected seed to default to false")
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
}

func TestServeFlagOverrides(t *testing.T) {
	opts, cfg, err := runServe(t, "--port", "9090", "--address", "127.0.0.1", "--seed", "--log-level", "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("expected address 127.0.0.1, got %q", cfg.Address)
	}
	if !opts.seed {
		t.Error("expected seed to be true")
	}
	if opts.logLevel != "debug" {
		t.Errorf("expected log level debug, got %q", opts.logLevel)
	}
}

func TestServeInvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{name: "zero", port: "0"},
		{name: "negative", port: "-1"},
		{name: "too large", port: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runServe(t, "--port", tt.port); err == nil {
				t.Error("expected error for invalid port")
			}
		})
	}
}

func TestServeConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: 9000\nrateLimitBurst: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, cfg, err := runServe(t, "--config", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("expected port 9000 from config file, got %d", cfg.Port)
	}
	if cfg.RateLimitBurst != 50 {
		t.Errorf("expected burst 50 from config file, got %d", cfg.RateLimitBurst)
	}

	// Flags take precedence over the config file.
	_, cfg, err = runServe(t, "--config", path, "--port", "9393")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9393 {
		t.Errorf("expected flag port 9393 to override config file, got %d", cfg.Port)
	}
}

func TestServeMissingConfigFile(t *testing.T) {
	if _, _, err := runServe(t, "--config", "/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestRootCommands(t *testing.T) {
	root := rootCmd()
	want := map[string]bool{"serve": false, "version": false}
	for _, c := range root.Commands {
		if _, ok := want[c.Name]; ok {
			want[c.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing command %q", name)
		}
	}
}
