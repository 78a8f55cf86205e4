// File: arithmetic.go
// Title: Calendar Arithmetic
// Description: Adding years, quarters, months and weeks on calendar fields,
//              differences between vectors, leap years and whole-unit counts
//              between calendar values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package calendar

import (
	"math"

	"github.com/msto63/chronox/foundation/clock/civil"
	"github.com/msto63/chronox/foundation/clock/duration"
	"github.com/msto63/chronox/foundation/clock/internal/arith"
	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// unitField returns the field a duration of precision p is added to.
func (v Vector) unitField(p precision.Precision) (Field, bool) {
	switch v.kind {
	case YearMonthDay, YearMonthWeekday:
		switch p {
		case precision.Year:
			return Year, true
		case precision.Quarter, precision.Month:
			return Month, true
		}
	case YearQuarterDay:
		switch p {
		case precision.Year:
			return Year, true
		case precision.Quarter:
			return Quarter, true
		}
	case IsoYearWeekDay, YearWeekDay:
		switch p {
		case precision.Year:
			return Year, true
		case precision.Week:
			return Week, true
		}
	case YearDay:
		return Year, p == precision.Year
	}
	return 0, false
}

// Plus adds calendrical durations elementwise. Only the coarse field the
// duration counts is changed, so the result may hold invalid dates that
// need InvalidResolve. Week arithmetic on week calendars moves over whole
// weeks and crosses 52 and 53 week years.
func (v Vector) Plus(d duration.Vector) (Vector, error) {
	const op = "plus"
	data, err := nullable.Map2(v.data, d, op, func(x Fields, d duration.Duration) (Fields, error) {
		return v.plus(x, d)
	})
	if err != nil {
		return Vector{}, err
	}
	return v.with(data, v.precision), nil
}

// Minus is Plus with every duration negated.
func (v Vector) Minus(d duration.Vector) (Vector, error) {
	neg, err := nullable.Map(d, "minus", duration.Neg)
	if err != nil {
		return Vector{}, err
	}
	return v.Plus(neg)
}

func (v Vector) plus(x Fields, d duration.Duration) (Fields, error) {
	const op = "plus"
	field, ok := v.unitField(d.Precision())
	if !ok {
		return x, cxerror.Incompatible("cannot add %s durations to a %s; convert to a time point first", d.Precision(), v.kind.Name()).
			WithOperation(op)
	}
	if field.Precision() > v.precision {
		return x, cxerror.Precision("cannot add %s durations to a %s with %s precision", d.Precision(), v.kind.Name(), v.precision).
			WithOperation(op)
	}

	n := d.Ticks()
	switch {
	case field == Year:
		y, ok := arith.Add(x.Year, n)
		if !ok {
			return x, cxerror.Overflow(op)
		}
		x.Year = y
	case field == Quarter:
		x.Year, x.Quarter = civil.AddQuarters(x.Year, x.Quarter, n)
	case field == Month:
		if d.Precision() == precision.Quarter {
			if n, ok = arith.Mul(n, 3); !ok {
				return x, cxerror.Overflow(op)
			}
		}
		x.Year, x.Month = civil.AddMonths(x.Year, x.Month, n)
	case field == Week:
		day := x.Day
		if v.precision < precision.Day {
			day = 1
		}
		shift, ok := arith.Mul(n, 7)
		if !ok {
			return x, cxerror.Overflow(op)
		}
		z, ok := arith.Add(civil.DaysFromWeekly(x.Year, x.Week, day, v.weekStart()), shift)
		if !ok {
			return x, cxerror.Overflow(op)
		}
		x.Year, x.Week, _ = civil.WeeklyFromDays(z, v.weekStart())
	}
	if err := civil.YearRange.Check("year", x.Year); err != nil {
		return x, cxerror.Wrap(err, "result outside the supported range of years").WithOperation(op)
	}
	return x, nil
}

// Diff returns x - y in the unit of the vectors' precision, which must be
// year, quarter or month. Both vectors must share kind, configuration and
// precision; a length-one side is recycled.
func Diff(x, y Vector) (duration.Vector, error) {
	const op = "diff"
	if err := x.compatible(op, y); err != nil {
		return duration.Vector{}, err
	}
	p := x.precision
	if p != precision.Year && p != precision.Quarter && p != precision.Month {
		return duration.Vector{}, cxerror.Precision("the difference of two %s values is defined at year, quarter and month precision, not %s",
			x.kind.Name(), p).WithOperation(op)
	}
	return nullable.Map2(x.data, y.data, op, func(a, b Fields) (duration.Duration, error) {
		n, err := unitsBetween(b, a, p)
		if err != nil {
			return duration.Duration{}, err
		}
		return duration.New(n, p), nil
	})
}

// unitsBetween returns the number of p units from the p unit of a to the
// p unit of b, ignoring finer fields.
func unitsBetween(a, b Fields, p precision.Precision) (int64, error) {
	var per, from, to int64
	switch p {
	case precision.Quarter:
		per, from, to = 4, a.Quarter-1, b.Quarter-1
	case precision.Month:
		per, from, to = 12, a.Month-1, b.Month-1
	default:
		per = 1
	}
	dy, ok := arith.Sub(b.Year, a.Year)
	if !ok {
		return 0, cxerror.Overflow("units between")
	}
	n, ok := arith.Mul(dy, per)
	if !ok {
		return 0, cxerror.Overflow("units between")
	}
	n, ok = arith.Add(n, to-from)
	if !ok {
		return 0, cxerror.Overflow("units between")
	}
	return n, nil
}

// LeapYear reports for every element whether its year is long: a
// Gregorian leap year, a fiscal year holding February 29th, or a week year
// with 53 weeks.
func (v Vector) LeapYear() nullable.Vector[bool] {
	out, _ := nullable.Map(v.data, "leap year", func(x Fields) (bool, error) {
		return v.leap(x.Year), nil
	})
	return out
}

// CountBetween returns the number of whole n*p units from start to end,
// computed on the calendar fields and truncated toward zero. p must be one
// of the kind's CountPrecisions and the vectors must be at least that
// precise.
func CountBetween(start, end Vector, p precision.Precision, n int64) (nullable.Vector[int64], error) {
	const op = "count between"
	if err := start.compatible(op, end); err != nil {
		return nullable.Vector[int64]{}, err
	}
	allowed := false
	for _, q := range start.kind.CountPrecisions() {
		allowed = allowed || q == p
	}
	if !allowed {
		return nullable.Vector[int64]{}, cxerror.Precision("counting %s units is not supported by %s", p, start.kind.Name()).
			WithOperation(op).
			WithDetail("allowed", start.kind.CountPrecisions())
	}
	if n < 1 {
		return nullable.Vector[int64]{}, cxerror.OutOfRange("n", n, 1, math.MaxInt64).WithOperation(op)
	}
	unit := p
	if p == precision.Quarter && start.kind != YearQuarterDay {
		unit = precision.Month
		var ok bool
		if n, ok = arith.Mul(n, 3); !ok {
			return nullable.Vector[int64]{}, cxerror.Overflow(op)
		}
	}
	if start.precision < unit {
		return nullable.Vector[int64]{}, cxerror.Precision("counting %s units needs at least %s precision, not %s", p, unit, start.precision).
			WithOperation(op)
	}
	return nullable.Map2(start.data, end.data, op, func(a, b Fields) (int64, error) {
		count, err := unitsBetween(a, b, unit)
		if err != nil {
			return 0, err
		}
		c := start.compareFiner(a, b, unit)
		switch {
		case count > 0 && c > 0:
			count--
		case count < 0 && c < 0:
			count++
		}
		return count / n, nil
	})
}

// compareFiner compares the fields of a and b finer than unit, stored at
// the vector's precision. It returns -1, 0 or 1.
func (v Vector) compareFiner(a, b Fields, unit precision.Precision) int {
	if v.kind == YearMonthWeekday && v.precision >= precision.Day {
		a, b = v.monthDayProxy(a), v.monthDayProxy(b)
	}
	coarse := map[Field]bool{}
	for _, f := range v.kind.Fields(unit) {
		coarse[f] = true
	}
	for _, f := range v.kind.Fields(v.precision) {
		if coarse[f] || (v.kind == YearMonthWeekday && f == Index) {
			continue
		}
		switch av, bv := a.Get(f), b.Get(f); {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}

// monthDayProxy replaces the weekday and index of a year_month_weekday
// value with its day of the month so that values order chronologically.
func (v Vector) monthDayProxy(x Fields) Fields {
	x.Day = v.days(x) - civil.DaysFromCivil(x.Year, x.Month, 1) + 1
	return x
}
