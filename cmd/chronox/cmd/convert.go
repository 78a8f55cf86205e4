// File: convert.go
// Title: Convert Command
// Description: Converts dates between calendars, resolving invalid dates
//              first when a policy is given.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/chronox/foundation/clock/calendar"
	"github.com/msto63/chronox/foundation/core/log"
	"github.com/msto63/chronox/internal/batch"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		in     calendarFlags
		to     string
		policy string
	)

	cmd := &cobra.Command{
		Use:   "convert [flags] DATE...",
		Short: "Convert dates to another calendar",
		Long: `Convert dates from one calendar to another, keeping the precision.

Invalid dates are resolved first when --invalid names a policy other than
error; otherwise they fail the conversion.`,
		Example: `  chronox convert --to iso 2021,1,1 2021,2,28
  chronox convert -c yqd --fiscal-start 4 --to ymd 2022,1,1
  chronox convert --to yd --invalid previous -i dates.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := calendar.ParseKind(to)
			if err != nil {
				return err
			}
			d, err := a.readDates(&in, args)
			if err != nil {
				return err
			}
			p, err := a.policy(cmd, policy)
			if err != nil {
				return err
			}

			job := batch.Job{Kind: d.kind, Precision: d.p, Options: d.opts}
			if p != calendar.PolicyError {
				job.Stages = append(job.Stages, batch.Resolve(p))
			}
			job.Stages = append(job.Stages, batch.Convert(target, d.opts...))

			out, err := a.runner().Run(cmd.Context(), job, d.rows)
			if err != nil {
				return err
			}
			log.Info("converted dates", log.Fields{
				"from": d.kind.Name(),
				"to":   target.Name(),
				"rows": out.Len(),
			})

			t := table{headers: []string{"input", target.Name()}}
			for i, s := range out.Strings() {
				t.add(d.texts[i], s)
			}
			return a.render(t)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&to, "to", "t", "", "target calendar")
	cmd.Flags().StringVar(&policy, "invalid", "", "invalid date policy (default from config)")
	cmd.MarkFlagRequired("to")
	return cmd
}

// policy returns the flag value when set, otherwise the configured policy
func (a *app) policy(cmd *cobra.Command, flag string) (calendar.Policy, error) {
	if cmd.Flags().Changed("invalid") {
		return calendar.ParsePolicy(flag)
	}
	return a.cfg.Policy()
}
