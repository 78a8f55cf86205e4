// File: shift.go
// Title: Weekday Shifts and Counts
// Description: Weekday of a time point, shifting to a target weekday, and
//              whole-unit counts between time points.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package timepoint

import (
	"math"

	"github.com/msto63/chronox/foundation/clock/duration"
	"github.com/msto63/chronox/foundation/clock/internal/arith"
	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/foundation/clock/weekday"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Which selects the search direction of Shift.
type Which int

const (
	Next Which = iota
	Previous
)

// Boundary decides what Shift does when t already falls on the target.
type Boundary int

const (
	// Keep returns t unchanged.
	Keep Boundary = iota
	// Advance moves a full week.
	Advance
)

// Days returns the whole days since the epoch of the day containing t.
func Days(t TimePoint) int64 {
	num, _ := precision.Ratio(precision.Day, t.Precision())
	return arith.FloorDiv(t.since.Ticks(), num)
}

// Weekday returns the weekday of the day containing t.
func Weekday(t TimePoint) weekday.Weekday {
	return weekday.OfDays(Days(t))
}

// Shift moves t by whole days onto the target weekday. The time of day is
// preserved.
func Shift(t TimePoint, target weekday.Weekday, which Which, boundary Boundary) (TimePoint, error) {
	current := Weekday(t)

	var delta int64
	switch which {
	case Next:
		delta = current.DaysUntil(target)
		if delta == 0 && boundary == Advance {
			delta = 7
		}
	case Previous:
		delta = -current.DaysSince(target)
		if delta == 0 && boundary == Advance {
			delta = -7
		}
	default:
		return TimePoint{}, cxerror.New("unknown shift direction").WithCode(cxerror.CodeInvalidInput)
	}
	if delta == 0 {
		return t, nil
	}

	step, err := duration.Cast(duration.Days(delta), t.Precision())
	if err != nil {
		return TimePoint{}, err
	}
	return Add(t, step)
}

// ShiftVector applies Shift to every element of v.
func ShiftVector(v Vector, target weekday.Weekday, which Which, boundary Boundary) (Vector, error) {
	return nullable.Map(v, "time point shift", func(t TimePoint) (TimePoint, error) {
		return Shift(t, target, which, boundary)
	})
}

// CountBetween returns the number of whole n*p units from start to end,
// truncated toward zero so that swapping the arguments negates the result.
// p must be week or finer; calendrical units are counted on calendars.
func CountBetween(start, end TimePoint, p precision.Precision, n int64) (int64, error) {
	const op = "count between"
	if err := sameClock(op, start, end); err != nil {
		return 0, err
	}
	if err := precision.Require(op, p, precision.Week, precision.Nanosecond); err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, cxerror.OutOfRange("n", n, 1, math.MaxInt64).WithOperation(op)
	}

	common, err := precision.Common(start.Precision(), end.Precision())
	if err != nil {
		return 0, err
	}
	s, err := duration.Cast(start.since, common)
	if err != nil {
		return 0, err
	}
	e, err := duration.Cast(end.since, common)
	if err != nil {
		return 0, err
	}
	diff, err := duration.Sub(e, s)
	if err != nil {
		return 0, err
	}
	units, err := duration.Cast(diff, p)
	if err != nil {
		return 0, err
	}
	return units.Ticks() / n, nil
}

// CountBetweenVector applies CountBetween elementwise, recycling a
// length-one side.
func CountBetweenVector(start, end Vector, p precision.Precision, n int64) (nullable.Vector[int64], error) {
	return nullable.Map2(start, end, "count between", func(s, e TimePoint) (int64, error) {
		return CountBetween(s, e, p, n)
	})
}
