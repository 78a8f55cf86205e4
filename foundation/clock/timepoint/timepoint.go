// File: timepoint.go
// Title: Time Points
// Description: A duration since 1970-01-01 tagged with the clock it is
//              measured on. Naive time points carry no time zone; sys time
//              points are UTC instants. Operations never mix the two clocks
//              implicitly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package timepoint

import (
	"fmt"

	"github.com/msto63/chronox/foundation/clock/duration"
	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Clock distinguishes wall-clock time from UTC instants.
type Clock uint8

const (
	Naive Clock = iota
	Sys
)

func (c Clock) String() string {
	if c == Sys {
		return "sys"
	}
	return "naive"
}

// TimePoint is an offset from the epoch on a clock. Precision is day or finer.
type TimePoint struct {
	clock Clock
	since duration.Duration
}

// Vector is a nullable sequence of time points.
type Vector = nullable.Vector[TimePoint]

// New returns the time point d after the epoch of clock c.
func New(c Clock, d duration.Duration) (TimePoint, error) {
	if err := requirePrecision("time point", d.Precision()); err != nil {
		return TimePoint{}, err
	}
	return TimePoint{clock: c, since: d}, nil
}

// NaiveDays returns the naive time point n days after 1970-01-01.
func NaiveDays(n int64) TimePoint {
	return TimePoint{clock: Naive, since: duration.Days(n)}
}

// SysDays returns the sys time point n days after 1970-01-01.
func SysDays(n int64) TimePoint {
	return TimePoint{clock: Sys, since: duration.Days(n)}
}

// Clock returns the clock tag.
func (t TimePoint) Clock() Clock { return t.clock }

// SinceEpoch returns the offset from the epoch.
func (t TimePoint) SinceEpoch() duration.Duration { return t.since }

// Precision returns the precision of the offset.
func (t TimePoint) Precision() precision.Precision { return t.since.Precision() }

// String renders the clock, precision and tick count, e.g. "sys<day>[18628]".
func (t TimePoint) String() string {
	return fmt.Sprintf("%s<%s>[%d]", t.clock, t.since.Precision(), t.since.Ticks())
}

func requirePrecision(op string, p precision.Precision) error {
	return precision.Require(op, p, precision.Day, precision.Nanosecond)
}

func sameClock(op string, a, b TimePoint) error {
	if a.clock != b.clock {
		return cxerror.Incompatible("%s between %s and %s time points; convert through a time zone first", op, a.clock, b.clock).
			WithOperation(op)
	}
	return nil
}

// Cast converts t to precision p, truncating toward zero.
func Cast(t TimePoint, p precision.Precision) (TimePoint, error) {
	if err := requirePrecision("time point cast", p); err != nil {
		return TimePoint{}, err
	}
	d, err := duration.Cast(t.since, p)
	if err != nil {
		return TimePoint{}, err
	}
	return TimePoint{clock: t.clock, since: d}, nil
}

// Add returns t shifted by d. d must have the precision of t.
func Add(t TimePoint, d duration.Duration) (TimePoint, error) {
	s, err := duration.Add(t.since, d)
	if err != nil {
		return TimePoint{}, err
	}
	return TimePoint{clock: t.clock, since: s}, nil
}

// Sub returns t shifted back by d. d must have the precision of t.
func Sub(t TimePoint, d duration.Duration) (TimePoint, error) {
	s, err := duration.Sub(t.since, d)
	if err != nil {
		return TimePoint{}, err
	}
	return TimePoint{clock: t.clock, since: s}, nil
}

// Diff returns a-b. Both must share clock and precision.
func Diff(a, b TimePoint) (duration.Duration, error) {
	if err := sameClock("difference", a, b); err != nil {
		return duration.Duration{}, err
	}
	return duration.Sub(a.since, b.since)
}

// Compare orders a and b on a common precision. Clocks must match.
func Compare(a, b TimePoint) (int, error) {
	if err := sameClock("comparison", a, b); err != nil {
		return 0, err
	}
	return duration.Compare(a.since, b.since)
}

// Floor returns the start of the n*p interval containing t, counted from
// the epoch. A week target yields a day-precision result.
func Floor(t TimePoint, p precision.Precision, n int64) (TimePoint, error) {
	return anchor(t, p, n, nil, duration.FloorFrom)
}

// Ceiling is Floor toward the end of the interval.
func Ceiling(t TimePoint, p precision.Precision, n int64) (TimePoint, error) {
	return anchor(t, p, n, nil, duration.CeilingFrom)
}

// Round returns the nearer of Floor and Ceiling; ties go to Ceiling.
func Round(t TimePoint, p precision.Precision, n int64) (TimePoint, error) {
	return anchor(t, p, n, nil, duration.RoundFrom)
}

// FloorFrom is Floor with intervals anchored at origin, which must be on
// the same clock and not finer than t.
func FloorFrom(t TimePoint, p precision.Precision, n int64, origin TimePoint) (TimePoint, error) {
	return anchor(t, p, n, &origin, duration.FloorFrom)
}

// CeilingFrom is Ceiling with intervals anchored at origin.
func CeilingFrom(t TimePoint, p precision.Precision, n int64, origin TimePoint) (TimePoint, error) {
	return anchor(t, p, n, &origin, duration.CeilingFrom)
}

// RoundFrom is Round with intervals anchored at origin.
func RoundFrom(t TimePoint, p precision.Precision, n int64, origin TimePoint) (TimePoint, error) {
	return anchor(t, p, n, &origin, duration.RoundFrom)
}

type anchorFunc func(d duration.Duration, p precision.Precision, n int64, origin duration.Duration) (duration.Duration, error)

func anchor(t TimePoint, p precision.Precision, n int64, origin *TimePoint, fn anchorFunc) (TimePoint, error) {
	if err := precision.Require("time point rounding", p, precision.Week, precision.Nanosecond); err != nil {
		return TimePoint{}, err
	}
	o := duration.New(0, p)
	if p == precision.Week {
		o = duration.Days(0)
	}
	if origin != nil {
		if err := sameClock("rounding", t, *origin); err != nil {
			return TimePoint{}, err
		}
		o = origin.since
	}
	d, err := fn(t.since, p, n, o)
	if err != nil {
		return TimePoint{}, err
	}
	if d.Precision() == precision.Week {
		if d, err = duration.Cast(d, precision.Day); err != nil {
			return TimePoint{}, err
		}
	}
	return TimePoint{clock: t.clock, since: d}, nil
}

// CastVector casts every element of v to p.
func CastVector(v Vector, p precision.Precision) (Vector, error) {
	return nullable.Map(v, "time point cast", func(t TimePoint) (TimePoint, error) {
		return Cast(t, p)
	})
}

// Seq returns the time points from, from+by, ... up to and including to.
// by must be positive and have the precision of from.
func Seq(from, to TimePoint, by duration.Duration) (Vector, error) {
	if err := sameClock("sequence", from, to); err != nil {
		return Vector{}, err
	}
	if by.Sign() <= 0 {
		return Vector{}, cxerror.New("sequence step must be positive").WithCode(cxerror.CodeInvalidInput).
			WithDetail("by", by.String())
	}
	end, err := Cast(to, from.Precision())
	if err != nil {
		return Vector{}, err
	}
	b := nullable.NewBuilder[TimePoint](0)
	for cur := from; ; {
		if c, _ := Compare(cur, end); c > 0 {
			break
		}
		b.Append(cur)
		next, err := Add(cur, by)
		if err != nil {
			if cxerror.HasCode(err, cxerror.CodeOverflow) {
				break
			}
			return Vector{}, err
		}
		cur = next
	}
	return b.Build(), nil
}
