// File: group.go
// Title: Group and Boundary Commands
// Description: Buckets dates into groups of n units and moves dates to the
//              start or end of a unit.
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

	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/foundation/core/log"
	"github.com/msto63/chronox/internal/batch"
)

func newGroupCmd(a *app) *cobra.Command {
	var (
		in calendarFlags
		by string
		n  int64
	)

	cmd := &cobra.Command{
		Use:   "group [flags] DATE...",
		Short: "Bucket dates into groups of n units",
		Long: `Narrow dates to --by and bucket that field into groups of --n.

Groups restart at the next coarser field, so grouping months by 5 yields
months 1, 6 and 11 of every year.`,
		Example: `  chronox group --by month --n 3 2021,5,17 2021,12,1
  chronox group -c yqd --by day --n 14 2021,1,20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := precision.Parse(by)
			if err != nil {
				return err
			}
			d, err := a.readDates(&in, args)
			if err != nil {
				return err
			}

			job := batch.Job{Kind: d.kind, Precision: d.p, Options: d.opts,
				Stages: []batch.Stage{batch.Group(p, n)}}
			out, err := a.runner().Run(cmd.Context(), job, d.rows)
			if err != nil {
				return err
			}
			log.Debug("grouped dates", log.Fields{"by": p.String(), "n": n, "rows": out.Len()})

			t := table{headers: []string{"input", "group"}}
			for i, s := range out.Strings() {
				t.add(d.texts[i], s)
			}
			return a.render(t)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&by, "by", "month", "precision to group at")
	cmd.Flags().Int64Var(&n, "n", 1, "group width")
	return cmd
}

func newBoundaryCmd(a *app) *cobra.Command {
	var (
		in   calendarFlags
		unit string
		end  bool
	)

	cmd := &cobra.Command{
		Use:   "boundary [flags] DATE...",
		Short: "Move dates to the start or end of a unit",
		Long: `Move every date to the first (or, with --end, the last) moment of
its --unit, keeping the input precision.`,
		Example: `  chronox boundary --unit month 2021,2,17
  chronox boundary --unit quarter --end -c yqd --fiscal-start 4 2021,2,17`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := precision.Parse(unit)
			if err != nil {
				return err
			}
			d, err := a.readDates(&in, args)
			if err != nil {
				return err
			}

			stage, header := batch.Start(p), "start"
			if end {
				stage, header = batch.End(p), "end"
			}
			job := batch.Job{Kind: d.kind, Precision: d.p, Options: d.opts, Stages: []batch.Stage{stage}}
			out, err := a.runner().Run(cmd.Context(), job, d.rows)
			if err != nil {
				return err
			}

			t := table{headers: []string{"input", header}}
			for i, s := range out.Strings() {
				t.add(d.texts[i], s)
			}
			return a.render(t)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&unit, "unit", "month", "unit whose boundary to move to")
	cmd.Flags().BoolVar(&end, "end", false, "move to the end instead of the start")
	return cmd
}
