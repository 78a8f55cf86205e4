// File: count.go
// Title: Count Command
// Description: Counts whole units between pairs of dates, on calendar fields
//              for calendrical units and on time points for finer ones.
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
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/chronox/foundation/clock/calendar"
	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/foundation/clock/timepoint"
	cxerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/internal/batch"
)

func newCountCmd(a *app) *cobra.Command {
	var (
		in calendarFlags
		by string
		n  int64
	)

	cmd := &cobra.Command{
		Use:   "count [flags] START END [START END]...",
		Short: "Count whole units between pairs of dates",
		Long: `Count the whole units of --by between each START and END pair.

Years, quarters and months are counted on the calendar fields, so
2021-01-31 to 2021-02-28 is 0 months. Weeks and finer units are counted
on the elapsed time. Counts truncate toward zero and are negative when
END is before START. Input lines hold one pair separated by blanks.`,
		Example: `  chronox count --by month 2021,1,31 2021,3,1
  chronox count -c yqd --by quarter --n 2 2020,1,1 2021,4,1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := precision.Parse(by)
			if err != nil {
				return err
			}
			kind, p, opts, err := in.settings(a)
			if err != nil {
				return err
			}
			texts, err := a.records(args, in.input)
			if err != nil {
				return err
			}
			starts, ends, err := pairs(texts)
			if err != nil {
				return err
			}
			startRows, err := parseRecords(kind, p, starts)
			if err != nil {
				return err
			}
			endRows, err := parseRecords(kind, p, ends)
			if err != nil {
				return err
			}

			runner := a.runner()
			job := batch.Job{Kind: kind, Precision: p, Options: opts}
			start, err := runner.Run(cmd.Context(), job, startRows)
			if err != nil {
				return err
			}
			end, err := runner.Run(cmd.Context(), job, endRows)
			if err != nil {
				return err
			}

			counts, err := countBetween(start, end, unit, n)
			if err != nil {
				return err
			}

			t := table{headers: []string{"start", "end", unit.String() + "s"}}
			ss, es := start.Strings(), end.Strings()
			for i := 0; i < counts.Len(); i++ {
				c := calendar.NA
				if v, ok := counts.At(i); ok {
					c = strconv.FormatInt(v, 10)
				}
				t.add(ss[i], es[i], c)
			}
			return a.render(t)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&by, "by", "day", "unit to count")
	cmd.Flags().Int64Var(&n, "n", 1, "count in steps of n units")
	return cmd
}

// countBetween counts calendrical units on the fields and finer units on
// the naive time line
func countBetween(start, end calendar.Vector, unit precision.Precision, n int64) (nullable.Vector[int64], error) {
	if unit.IsCalendrical() {
		return calendar.CountBetween(start, end, unit, n)
	}
	s, err := start.AsNaive()
	if err != nil {
		return nullable.Vector[int64]{}, err
	}
	e, err := end.AsNaive()
	if err != nil {
		return nullable.Vector[int64]{}, err
	}
	return timepoint.CountBetweenVector(s, e, unit, n)
}

// pairs splits the flattened input into start and end dates
func pairs(texts []string) ([]string, []string, error) {
	var flat []string
	for _, t := range texts {
		flat = append(flat, strings.Fields(t)...)
	}
	if len(flat) == 0 || len(flat)%2 != 0 {
		return nil, nil, cxerror.Newf("count needs START END pairs, got %d dates", len(flat)).
			WithCode(cxerror.CodeInvalidInput)
	}
	starts := make([]string, 0, len(flat)/2)
	ends := make([]string, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		starts = append(starts, flat[i])
		ends = append(ends, flat[i+1])
	}
	return starts, ends, nil
}
