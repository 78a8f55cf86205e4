// File: access.go
// Title: Field Access
// Description: Reading and functional setting of single calendar fields,
//              including setting a field to its last valid value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package calendar

import (
	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

func (v Vector) requireField(op string, field Field) error {
	if !v.kind.Has(field) {
		return cxerror.Precision("%s has no %s field", v.kind.Name(), field).
			WithOperation(op).
			WithDetail("field", field.String())
	}
	return nil
}

// Get returns field for every element. The vector must store the field at
// its precision; subsecond fields require exactly their precision.
func (v Vector) Get(field Field) (nullable.Vector[int64], error) {
	op := "get " + field.String()
	if err := v.requireField(op, field); err != nil {
		return nullable.Vector[int64]{}, err
	}
	fp := field.Precision()
	if fp > v.precision || (fp.IsSubsecond() && fp != v.precision) {
		return nullable.Vector[int64]{}, cxerror.Precision("cannot get the %s of a %s with %s precision", field, v.kind.Name(), v.precision).
			WithOperation(op)
	}
	return nullable.Map(v.data, op, func(x Fields) (int64, error) {
		return x.Get(field), nil
	})
}

// targetPrecision returns the precision of v after setting field.
func (v Vector) targetPrecision(op string, field Field) (precision.Precision, error) {
	if err := v.requireField(op, field); err != nil {
		return 0, err
	}
	fp := field.Precision()
	switch {
	case fp.IsSubsecond() && v.precision.IsSubsecond() && fp != v.precision:
		return 0, cxerror.Precision("cannot set the %s of a %s with %s precision", field, v.kind.Name(), v.precision).
			WithOperation(op)
	case fp > v.precision:
		return fp, nil
	}
	return v.precision, nil
}

// Set sets field of every element to value. Setting a field finer than the
// precision widens the vector first. Only the range of the field itself is
// checked, so the result may hold invalid dates.
func (v Vector) Set(field Field, value int64) (Vector, error) {
	return v.SetEach(field, nullable.Of(value))
}

// SetEach sets field elementwise from values, recycling a length-one side.
// A null value yields a null element.
func (v Vector) SetEach(field Field, values nullable.Vector[int64]) (Vector, error) {
	op := "set " + field.String()
	p, err := v.targetPrecision(op, field)
	if err != nil {
		return Vector{}, err
	}
	w, err := v.Widen(p)
	if err != nil {
		return Vector{}, err
	}
	rng := v.rangeOf(field)
	data, err := nullable.Map2(w.data, values, op, func(x Fields, value int64) (Fields, error) {
		if err := rng.Check(field.String(), value); err != nil {
			return Fields{}, err
		}
		*x.ref(field) = value
		return x, nil
	})
	if err != nil {
		return Vector{}, err
	}
	return w.with(data, p), nil
}

// SetLast sets field to its last valid value given the coarser fields,
// e.g. the last day of each month or the last week of each ISO year.
func (v Vector) SetLast(field Field) (Vector, error) {
	op := "set last " + field.String()
	p, err := v.targetPrecision(op, field)
	if err != nil {
		return Vector{}, err
	}
	if v.kind == YearMonthWeekday && field == Day {
		return Vector{}, cxerror.Precision("the last weekday of a month is undefined; set the last index instead").
			WithOperation(op)
	}
	parent := v.parentPrecision(field)
	if v.precision < parent {
		return Vector{}, cxerror.Precision("setting the last %s of a %s requires at least %s precision, not %s",
			field, v.kind.Name(), parent, v.precision).WithOperation(op)
	}
	w, err := v.Widen(p)
	if err != nil {
		return Vector{}, err
	}
	data, err := nullable.Map(w.data, op, func(x Fields) (Fields, error) {
		*x.ref(field) = v.last(x, field)
		return x, nil
	})
	if err != nil {
		return Vector{}, err
	}
	return w.with(data, p), nil
}

// parentPrecision returns the precision holding every field field depends on.
func (v Vector) parentPrecision(field Field) precision.Precision {
	fields := v.kind.allFields()
	for i, f := range fields {
		if f == field && i > 0 {
			parent := fields[i-1]
			if field == Index {
				return precision.Day
			}
			if f.Precision().IsSubsecond() {
				return precision.Second
			}
			return parent.Precision()
		}
	}
	return precision.Year
}
