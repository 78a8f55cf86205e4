// Package batch evaluates calendar pipelines over large inputs in parallel
// chunks while keeping input order and reporting every failing row.
//
// Package: batch
// Title: Calendar Batch Pipelines
// Description: Jobs and stages evaluated by the batch runner over chunks of
//              input rows.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
package batch

import (
	"context"

	"github.com/msto63/chronox/foundation/clock/calendar"
	"github.com/msto63/chronox/foundation/clock/duration"
	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/foundation/clock/timepoint"
	"github.com/msto63/chronox/foundation/clock/weekday"
)

// Stage transforms one chunk of a calendar vector.
type Stage interface {
	// Name returns the stage name used in logs and errors
	Name() string
	// Apply runs the stage on a chunk
	Apply(ctx context.Context, v calendar.Vector) (calendar.Vector, error)
}

// Job describes how input rows become a calendar vector and what happens
// to it afterwards.
type Job struct {
	Kind      calendar.Kind
	Precision precision.Precision
	Options   []calendar.Option
	Stages    []Stage
}

// StageFunc adapts a function to a Stage.
type StageFunc struct {
	Label string
	Fn    func(v calendar.Vector) (calendar.Vector, error)
}

func (s StageFunc) Name() string { return s.Label }

func (s StageFunc) Apply(_ context.Context, v calendar.Vector) (calendar.Vector, error) {
	return s.Fn(v)
}

// Resolve repairs invalid dates with policy.
func Resolve(policy calendar.Policy) Stage {
	return StageFunc{Label: "resolve " + policy.String(), Fn: func(v calendar.Vector) (calendar.Vector, error) {
		return v.InvalidResolve(policy)
	}}
}

// Convert re-expresses the chunk in another calendar.
func Convert(kind calendar.Kind, opts ...calendar.Option) Stage {
	return StageFunc{Label: "convert " + kind.Name(), Fn: func(v calendar.Vector) (calendar.Vector, error) {
		return v.Convert(kind, opts...)
	}}
}

// Plus adds d to every element.
func Plus(d duration.Duration) Stage {
	return StageFunc{Label: "plus " + d.String(), Fn: func(v calendar.Vector) (calendar.Vector, error) {
		return v.Plus(nullable.Of(d))
	}}
}

// Group buckets elements at precision p into groups of n.
func Group(p precision.Precision, n int64) Stage {
	return StageFunc{Label: "group " + p.String(), Fn: func(v calendar.Vector) (calendar.Vector, error) {
		return v.Group(p, n)
	}}
}

// Start moves elements to the start of their p unit.
func Start(p precision.Precision) Stage {
	return StageFunc{Label: "start " + p.String(), Fn: func(v calendar.Vector) (calendar.Vector, error) {
		return v.Start(p)
	}}
}

// End moves elements to the end of their p unit.
func End(p precision.Precision) Stage {
	return StageFunc{Label: "end " + p.String(), Fn: func(v calendar.Vector) (calendar.Vector, error) {
		return v.End(p)
	}}
}

// ShiftWeekday moves every element to the next or previous target weekday
// on the naive time line, keeping the calendar and precision.
func ShiftWeekday(target weekday.Weekday, which timepoint.Which, boundary timepoint.Boundary) Stage {
	return StageFunc{Label: "shift " + target.String(), Fn: func(v calendar.Vector) (calendar.Vector, error) {
		if v.Data().NullCount() == v.Len() {
			return v, nil
		}
		tps, err := v.AsNaive()
		if err != nil {
			return calendar.Vector{}, err
		}
		shifted, err := timepoint.ShiftVector(tps, target, which, boundary)
		if err != nil {
			return calendar.Vector{}, err
		}
		return calendar.FromTimePoints(v.Kind(), shifted, v.Options()...)
	}}
}
