// File: boundary.go
// Title: Precision Boundaries
// Description: Narrowing, widening, start and end of a unit, grouping into
//              fixed-width buckets, and the smallest and largest values per
//              calendar.
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
	"github.com/msto63/chronox/foundation/clock/internal/arith"
	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

func (v Vector) requireCoarser(op string, p precision.Precision) error {
	if err := v.kind.requireSupported(op, p); err != nil {
		return err
	}
	if p > v.precision {
		return cxerror.Precision("cannot %s a %s with %s precision to the finer %s precision", op, v.kind.Name(), v.precision, p).
			WithOperation(op)
	}
	return nil
}

// rescale converts a subsecond count between subsecond precisions,
// truncating when narrowing. Precisions coarser than a second carry no
// subsecond.
func rescale(sub int64, from, to precision.Precision) int64 {
	if !from.IsSubsecond() || !to.IsSubsecond() {
		return 0
	}
	ff, _ := precision.SubsecondFactor(from)
	tf, _ := precision.SubsecondFactor(to)
	if tf >= ff {
		return sub * (tf / ff)
	}
	return sub / (ff / tf)
}

// Narrow drops the fields finer than p.
func (v Vector) Narrow(p precision.Precision) (Vector, error) {
	const op = "narrow"
	if err := v.requireCoarser(op, p); err != nil {
		return Vector{}, err
	}
	if p == v.precision {
		return v, nil
	}
	data, _ := nullable.Map(v.data, op, func(x Fields) (Fields, error) {
		sub := rescale(x.Subsecond, v.precision, p)
		x = x.truncate(v.kind, p)
		x.Subsecond = sub
		return x, nil
	})
	return v.with(data, p), nil
}

// Widen adds the fields up to p, each at its smallest value. Widening a
// year_month_weekday to day precision selects the first Sunday.
func (v Vector) Widen(p precision.Precision) (Vector, error) {
	const op = "widen"
	if err := v.kind.requireSupported(op, p); err != nil {
		return Vector{}, err
	}
	if p < v.precision {
		return Vector{}, cxerror.Precision("cannot widen a %s with %s precision to the coarser %s precision", v.kind.Name(), v.precision, p).
			WithOperation(op)
	}
	if p == v.precision {
		return v, nil
	}
	data, _ := nullable.Map(v.data, op, func(x Fields) (Fields, error) {
		x = v.fill(x, v.precision, p, false)
		x.Subsecond = rescale(x.Subsecond, v.precision, p)
		return x, nil
	})
	return v.with(data, p), nil
}

// Start moves every element to the start of its p unit, keeping the
// vector's precision.
func (v Vector) Start(p precision.Precision) (Vector, error) {
	return v.boundary("start", p, false)
}

// End moves every element to the last moment of its p unit, using the
// irregular unit lengths of the calendar.
func (v Vector) End(p precision.Precision) (Vector, error) {
	return v.boundary("end", p, true)
}

func (v Vector) boundary(op string, p precision.Precision, last bool) (Vector, error) {
	if err := v.requireCoarser(op, p); err != nil {
		return Vector{}, err
	}
	if v.kind == YearMonthWeekday && v.precision >= precision.Day {
		return Vector{}, cxerror.Precision("the %s of a year_month_weekday with day or finer precision is undefined", op).
			WithOperation(op)
	}
	data, _ := nullable.Map(v.data, op, func(x Fields) (Fields, error) {
		return v.fill(x.truncate(v.kind, p), p, v.precision, last), nil
	})
	return v.with(data, v.precision), nil
}

// Group narrows to p and buckets the p field into groups of n. Years and
// time fields are grouped from 0, the other fields from 1, and groups
// restart at every boundary of the next coarser field.
func (v Vector) Group(p precision.Precision, n int64) (Vector, error) {
	const op = "group"
	if n < 1 {
		return Vector{}, cxerror.OutOfRange("n", n, 1, math.MaxInt64).WithOperation(op)
	}
	if v.kind == YearMonthWeekday && p == precision.Day {
		return Vector{}, cxerror.Precision("grouping a year_month_weekday by %s is undefined", p).WithOperation(op)
	}
	w, err := v.Narrow(p)
	if err != nil {
		return Vector{}, err
	}
	fields := v.kind.Fields(p)
	field := fields[len(fields)-1]
	origin := v.first(field)
	if field == Year {
		origin = 0
	}
	data, _ := nullable.Map(w.data, op, func(x Fields) (Fields, error) {
		ref := x.ref(field)
		*ref = arith.FloorDiv(*ref-origin, n)*n + origin
		return x, nil
	})
	return w.with(data, p), nil
}

// Min returns a one-element vector holding the smallest value of the
// calendar at precision p.
func Min(kind Kind, p precision.Precision, opts ...Option) (Vector, error) {
	return limit(kind, p, civil.YearRange.Min, false, opts)
}

// Max returns a one-element vector holding the largest value of the
// calendar at precision p.
func Max(kind Kind, p precision.Precision, opts ...Option) (Vector, error) {
	return limit(kind, p, civil.YearRange.Max, true, opts)
}

func limit(kind Kind, p precision.Precision, year int64, last bool, opts []Option) (Vector, error) {
	v, err := New(kind, precision.Year, nullable.Of(Fields{Year: year}), opts...)
	if err != nil {
		return Vector{}, err
	}
	if err := kind.requireSupported("limit", p); err != nil {
		return Vector{}, err
	}
	x := v.fill(Fields{Year: year}, precision.Year, p, last)
	return v.with(nullable.Of(x), p), nil
}
