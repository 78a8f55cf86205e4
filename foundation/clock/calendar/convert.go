// File: convert.go
// Title: Time-Point Conversion
// Description: Conversion of calendar vectors to naive and sys time points
//              and back, and between calendars through naive time.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package calendar

import (
	"github.com/msto63/chronox/foundation/clock/civil"
	"github.com/msto63/chronox/foundation/clock/duration"
	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/foundation/clock/timepoint"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// AsNaive converts every element to a naive time point at the vector's
// precision, which must be day or finer. Invalid dates fail with an
// UNRESOLVED_INVALID error listing their positions.
func (v Vector) AsNaive() (timepoint.Vector, error) {
	return v.asTimePoints(timepoint.Naive)
}

// AsSys is AsNaive on the sys clock.
func (v Vector) AsSys() (timepoint.Vector, error) {
	return v.asTimePoints(timepoint.Sys)
}

func (v Vector) asTimePoints(c timepoint.Clock) (timepoint.Vector, error) {
	op := "as " + c.String()
	if v.precision < precision.Day {
		return timepoint.Vector{}, cxerror.Precision("converting a %s to a time point needs at least day precision, not %s",
			v.kind.Name(), v.precision).WithOperation(op)
	}
	if positions := v.invalidPositions(); len(positions) > 0 {
		return timepoint.Vector{}, cxerror.UnresolvedInvalid(op, positions)
	}
	return nullable.Map(v.data, op, func(x Fields) (timepoint.TimePoint, error) {
		ticks, ok := civil.JoinTicks(v.days(x), x.timeOfDay(), v.precision)
		if !ok {
			return timepoint.TimePoint{}, cxerror.Overflow(op)
		}
		return timepoint.New(c, duration.New(ticks, v.precision))
	})
}

// FromTimePoints converts time points of either clock to a calendar. The
// result has the finest precision among the time points, or day precision
// when the vector is empty or all null. Time points whose calendar year
// falls outside the year range fail with a RangeError.
func FromTimePoints(kind Kind, tps timepoint.Vector, opts ...Option) (Vector, error) {
	const op = "from time points"
	r, err := newRules(kind, opts)
	if err != nil {
		return Vector{}, cxerror.Wrap(err, "invalid calendar configuration").WithOperation(op)
	}
	p := precision.Day
	for i := 0; i < tps.Len(); i++ {
		if t, ok := tps.At(i); ok && t.Precision() > p {
			p = t.Precision()
		}
	}
	data, err := nullable.Map(tps, op, func(t timepoint.TimePoint) (Fields, error) {
		t, err := timepoint.Cast(t, p)
		if err != nil {
			return Fields{}, err
		}
		days, tod := civil.SplitTicks(t.SinceEpoch().Ticks(), p)
		x := r.fromDays(days)
		if err := civil.YearRange.Check("year", x.Year); err != nil {
			return Fields{}, err
		}
		x.setTimeOfDay(tod)
		return x, nil
	})
	if err != nil {
		return Vector{}, err
	}
	return Vector{rules: r, precision: p, data: data}, nil
}

// Convert re-expresses every element in another calendar through naive
// time points. The vector must be at least day precise and hold no
// invalid dates.
func (v Vector) Convert(kind Kind, opts ...Option) (Vector, error) {
	tps, err := v.AsNaive()
	if err != nil {
		return Vector{}, cxerror.Wrap(err, "converting to "+kind.Name())
	}
	out, err := FromTimePoints(kind, tps, opts...)
	if err != nil {
		return Vector{}, err
	}
	return out.with(out.data, v.precision), nil
}
