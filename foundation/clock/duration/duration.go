// File: duration.go
// Title: Precision-Tagged Durations
// Description: Signed tick counts tagged with a precision. Casts between
//              precisions are exact up to truncation; arithmetic requires
//              equal precisions and never wraps on overflow.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package duration

import (
	"fmt"

	"github.com/msto63/chronox/foundation/clock/internal/arith"
	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Duration is a number of ticks of one precision unit. The zero value is
// zero years.
type Duration struct {
	ticks     int64
	precision precision.Precision
}

// Vector is a nullable sequence of durations.
type Vector = nullable.Vector[Duration]

// New returns ticks units of precision p.
func New(ticks int64, p precision.Precision) Duration {
	return Duration{ticks: ticks, precision: p}
}

func Years(n int64) Duration        { return New(n, precision.Year) }
func Quarters(n int64) Duration     { return New(n, precision.Quarter) }
func Months(n int64) Duration       { return New(n, precision.Month) }
func Weeks(n int64) Duration        { return New(n, precision.Week) }
func Days(n int64) Duration         { return New(n, precision.Day) }
func Hours(n int64) Duration        { return New(n, precision.Hour) }
func Minutes(n int64) Duration      { return New(n, precision.Minute) }
func Seconds(n int64) Duration      { return New(n, precision.Second) }
func Milliseconds(n int64) Duration { return New(n, precision.Millisecond) }
func Microseconds(n int64) Duration { return New(n, precision.Microsecond) }
func Nanoseconds(n int64) Duration  { return New(n, precision.Nanosecond) }

// Ticks returns the tick count.
func (d Duration) Ticks() int64 { return d.ticks }

// Precision returns the precision of one tick.
func (d Duration) Precision() precision.Precision { return d.precision }

// IsZero reports whether d has no ticks.
func (d Duration) IsZero() bool { return d.ticks == 0 }

// Sign returns -1, 0 or +1.
func (d Duration) Sign() int {
	switch {
	case d.ticks < 0:
		return -1
	case d.ticks > 0:
		return 1
	}
	return 0
}

// String renders d as "<ticks> <unit>", e.g. "3 months".
func (d Duration) String() string {
	unit := d.precision.String()
	if d.ticks != 1 && d.ticks != -1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s", d.ticks, unit)
}

// Cast converts d to precision p. Narrowing truncates toward zero; the
// intermediate product is 128 bits wide so only a result that does not fit
// int64 is an overflow.
func Cast(d Duration, p precision.Precision) (Duration, error) {
	if d.precision == p {
		return d, nil
	}
	num, den := precision.Ratio(d.precision, p)
	ticks, ok := arith.MulDiv(d.ticks, num, den)
	if !ok {
		return Duration{}, cxerror.Overflow("duration cast").
			WithDetail("from", d.precision.String()).
			WithDetail("to", p.String()).
			WithDetail("ticks", d.ticks)
	}
	return New(ticks, p), nil
}

// Equal reports whether a and b have the same precision and ticks.
func Equal(a, b Duration) bool {
	return a == b
}

// Compare orders a and b after casting both to their common precision.
func Compare(a, b Duration) (int, error) {
	ca, cb, err := toCommon(a, b)
	if err != nil {
		return 0, err
	}
	switch {
	case ca.ticks < cb.ticks:
		return -1, nil
	case ca.ticks > cb.ticks:
		return 1, nil
	}
	return 0, nil
}

func toCommon(a, b Duration) (Duration, Duration, error) {
	p, err := precision.Common(a.precision, b.precision)
	if err != nil {
		return Duration{}, Duration{}, err
	}
	ca, err := Cast(a, p)
	if err != nil {
		return Duration{}, Duration{}, err
	}
	cb, err := Cast(b, p)
	if err != nil {
		return Duration{}, Duration{}, err
	}
	return ca, cb, nil
}

// CastVector casts every element of v to p.
func CastVector(v Vector, p precision.Precision) (Vector, error) {
	return nullable.Map(v, "duration cast", func(d Duration) (Duration, error) {
		return Cast(d, p)
	})
}
