// File: resolve.go
// Title: Resolve Command
// Description: Detects dates that do not exist and repairs them with an
//              invalid date policy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/chronox/foundation/clock/calendar"
	"github.com/msto63/chronox/foundation/core/log"
	"github.com/msto63/chronox/internal/batch"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		in     calendarFlags
		policy string
	)

	cmd := &cobra.Command{
		Use:   "resolve [flags] DATE...",
		Short: "Detect and repair dates that do not exist",
		Long: `Check every date for existence and repair invalid ones.

Policies:
  previous       last moment of the last valid day
  previous-day   last valid day, time kept
  next           first moment of the next unit
  next-day       first day of the next unit, time kept
  overflow       count excess days past the end of the unit
  overflow-day   as overflow, time kept
  na             replace with NA
  error          fail naming every invalid position`,
		Example: `  chronox resolve --invalid previous 2021,2,29 2021,4,31
  chronox resolve -c iso --invalid next 2021,53,1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.readDates(&in, args)
			if err != nil {
				return err
			}
			p, err := a.policy(cmd, policy)
			if err != nil {
				return err
			}

			runner := a.runner()
			base := batch.Job{Kind: d.kind, Precision: d.p, Options: d.opts}
			checked, err := runner.Run(cmd.Context(), base, d.rows)
			if err != nil {
				return err
			}

			resolve := base
			resolve.Stages = []batch.Stage{batch.Resolve(p)}
			out, err := runner.Run(cmd.Context(), resolve, d.rows)
			if err != nil {
				return err
			}

			invalid := checked.InvalidDetect()
			if n := checked.InvalidCount(); n > 0 {
				log.Warn("invalid dates found", log.Fields{"count": n, "policy": p.String()})
			}
			t := table{headers: []string{"input", "valid", "resolved"}}
			resolved := out.Strings()
			for i := range resolved {
				valid := calendar.NA
				if bad, ok := invalid.At(i); ok {
					valid = strconv.FormatBool(!bad)
				}
				t.add(d.texts[i], valid, resolved[i])
			}
			return a.render(t)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&policy, "invalid", "", "invalid date policy (default from config)")
	return cmd
}
