// File: shift.go
// Title: Shift Command
// Description: Adds calendar units to dates and moves them to the next or
//              previous occurrence of a weekday.
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
	"github.com/msto63/chronox/foundation/clock/duration"
	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/foundation/clock/timepoint"
	cxerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/internal/batch"
)

func newShiftCmd(a *app) *cobra.Command {
	var (
		in      calendarFlags
		plus    int64
		unit    string
		policy  string
		target  string
		which   string
		advance bool
	)

	cmd := &cobra.Command{
		Use:   "shift [flags] DATE...",
		Short: "Add calendar units or move to a weekday",
		Long: `Shift dates by whole calendar units, then optionally move them to the
next or previous occurrence of a weekday.

Adding months or years can produce dates that do not exist, such as
2021-02-31. They are resolved with --invalid before the weekday shift.`,
		Example: `  chronox shift --plus 1 --unit month --invalid previous 2021,1,31
  chronox shift --weekday friday --which previous 2021,1,4
  chronox shift -c iso --plus 2 --unit week 2020,52,1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("plus") && target == "" {
				return cxerror.New("nothing to do: set --plus or --weekday").WithCode(cxerror.CodeInvalidInput)
			}
			d, err := a.readDates(&in, args)
			if err != nil {
				return err
			}

			job := batch.Job{Kind: d.kind, Precision: d.p, Options: d.opts}
			if cmd.Flags().Changed("plus") {
				u, err := precision.Parse(unit)
				if err != nil {
					return err
				}
				p, err := a.policy(cmd, policy)
				if err != nil {
					return err
				}
				job.Stages = append(job.Stages, batch.Plus(duration.New(plus, u)))
				if p != calendar.PolicyError {
					job.Stages = append(job.Stages, batch.Resolve(p))
				}
			}
			if target != "" {
				wd, err := a.parseWeekday(target)
				if err != nil {
					return err
				}
				w, err := parseWhich(which)
				if err != nil {
					return err
				}
				boundary := timepoint.Keep
				if advance {
					boundary = timepoint.Advance
				}
				job.Stages = append(job.Stages, batch.ShiftWeekday(wd, w, boundary))
			}

			out, err := a.runner().Run(cmd.Context(), job, d.rows)
			if err != nil {
				return err
			}

			t := table{headers: []string{"input", "shifted"}}
			for i, s := range out.Strings() {
				t.add(d.texts[i], s)
			}
			return a.render(t)
		},
	}

	in.register(cmd)
	cmd.Flags().Int64Var(&plus, "plus", 0, "number of units to add, negative to subtract")
	cmd.Flags().StringVar(&unit, "unit", "month", "unit of --plus: year, quarter, month or week")
	cmd.Flags().StringVar(&policy, "invalid", "", "invalid date policy after adding (default from config)")
	cmd.Flags().StringVar(&target, "weekday", "", "move to this weekday, name or code")
	cmd.Flags().StringVar(&which, "which", "next", "direction of the weekday move: next or previous")
	cmd.Flags().BoolVar(&advance, "advance", false, "move a full week when already on the weekday")
	return cmd
}

func parseWhich(s string) (timepoint.Which, error) {
	switch s {
	case "next":
		return timepoint.Next, nil
	case "previous", "prev":
		return timepoint.Previous, nil
	}
	return 0, cxerror.Newf("--which must be next or previous, not %q", s).WithCode(cxerror.CodeInvalidInput)
}
