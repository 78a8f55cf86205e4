// File: info.go
// Title: Info Command
// Description: Lists calendars with their precisions and representable range,
//              or prints the effective configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/chronox/foundation/clock/calendar"
	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/pkg/core/config"
)

func newInfoCmd(a *app) *cobra.Command {
	var showConfig bool

	cmd := &cobra.Command{
		Use:   "info [CALENDAR...]",
		Short: "Describe the calendars or show the effective configuration",
		Example: `  chronox info
  chronox info yqd iso
  chronox info --config -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showConfig {
				format := a.cfg.Output.Format
				if format == config.OutputText {
					format = "toml"
				}
				return a.cfg.Write(a.stdout, format)
			}

			kinds := calendar.Kinds()
			if len(args) > 0 {
				kinds = kinds[:0:0]
				for _, name := range args {
					k, err := calendar.ParseKind(name)
					if err != nil {
						return err
					}
					kinds = append(kinds, k)
				}
			}

			opts, err := a.cfg.CalendarOptions()
			if err != nil {
				return err
			}

			t := table{headers: []string{"calendar", "precisions", "count", "min", "max"}}
			for _, k := range kinds {
				lo, err := calendar.Min(k, precision.Day, opts...)
				if err != nil {
					return err
				}
				hi, err := calendar.Max(k, precision.Day, opts...)
				if err != nil {
					return err
				}
				t.add(k.Name(), names(k.Precisions()), names(k.CountPrecisions()), lo.Strings()[0], hi.Strings()[0])
			}
			return a.render(t)
		},
	}

	cmd.Flags().BoolVar(&showConfig, "config", false, "print the effective configuration")
	return cmd
}

func names(ps []precision.Precision) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return strings.Join(out, ",")
}
