// File: version.go
// Title: Version Command
// Description: Prints release, component versions and build metadata.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chronox/pkg/core/config"
	"github.com/msto63/chronox/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			switch a.cfg.Output.Format {
			case config.OutputJSON:
				return a.writeJSON(info)
			case config.OutputYAML:
				return a.writeYAML(info)
			}
			fmt.Fprintf(a.stdout, "chronox v%s\n", info.Version)
			fmt.Fprintf(a.stdout, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(a.stdout, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(a.stdout, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(a.stdout, "  OS/Arch:    %s\n", info.Platform)
			return nil
		},
	}
}
