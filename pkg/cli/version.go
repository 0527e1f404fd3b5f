/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/workorder-api/pkg/api"
	"github.com/NVIDIA/workorder-api/pkg/serializer"
)

// buildInfo is the printable version payload.
type buildInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			version, commit, date := api.Version()
			s := &serializer.StdoutSerializer{}
			return s.Serialize(buildInfo{
				Name:    name,
				Version: version,
				Commit:  commit,
				Date:    date,
			})
		},
	}
}
