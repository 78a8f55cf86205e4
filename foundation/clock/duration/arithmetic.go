// File: arithmetic.go
// Title: Duration Arithmetic
// Description: Overflow-checked addition, subtraction, negation, scaling,
//              quotients and remainders of equal-precision durations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package duration

import (
	"github.com/msto63/chronox/foundation/clock/internal/arith"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

func samePrecision(op string, a, b Duration) error {
	if a.precision != b.precision {
		return cxerror.Incompatible("%s requires durations of equal precision, got %s and %s; cast first", op, a.precision, b.precision).
			WithOperation(op)
	}
	return nil
}

// Add returns a+b. Both must have the same precision.
func Add(a, b Duration) (Duration, error) {
	if err := samePrecision("add", a, b); err != nil {
		return Duration{}, err
	}
	t, ok := arith.Add(a.ticks, b.ticks)
	if !ok {
		return Duration{}, cxerror.Overflow("duration add")
	}
	return New(t, a.precision), nil
}

// Sub returns a-b. Both must have the same precision.
func Sub(a, b Duration) (Duration, error) {
	if err := samePrecision("subtract", a, b); err != nil {
		return Duration{}, err
	}
	t, ok := arith.Sub(a.ticks, b.ticks)
	if !ok {
		return Duration{}, cxerror.Overflow("duration subtract")
	}
	return New(t, a.precision), nil
}

// Neg returns -d.
func Neg(d Duration) (Duration, error) {
	t, ok := arith.Neg(d.ticks)
	if !ok {
		return Duration{}, cxerror.Overflow("duration negate")
	}
	return New(t, d.precision), nil
}

// Abs returns |d|.
func Abs(d Duration) (Duration, error) {
	if d.ticks >= 0 {
		return d, nil
	}
	return Neg(d)
}

// Mul returns d scaled by k.
func Mul(d Duration, k int64) (Duration, error) {
	t, ok := arith.Mul(d.ticks, k)
	if !ok {
		return Duration{}, cxerror.Overflow("duration multiply")
	}
	return New(t, d.precision), nil
}

// Div returns d divided by k, truncated toward zero.
func Div(d Duration, k int64) (Duration, error) {
	if k == 0 {
		return Duration{}, cxerror.New("division of a duration by zero").WithCode(cxerror.CodeInvalidInput)
	}
	if k == -1 {
		return Neg(d)
	}
	return New(d.ticks/k, d.precision), nil
}

// Quotient returns the whole number of times b fits into a, truncated toward
// zero. Both must have the same precision.
func Quotient(a, b Duration) (int64, error) {
	if err := samePrecision("integer divide", a, b); err != nil {
		return 0, err
	}
	if b.ticks == 0 {
		return 0, cxerror.New("integer division by a zero duration").WithCode(cxerror.CodeInvalidInput)
	}
	if b.ticks == -1 {
		q, ok := arith.Neg(a.ticks)
		if !ok {
			return 0, cxerror.Overflow("duration integer divide")
		}
		return q, nil
	}
	return a.ticks / b.ticks, nil
}

// Remainder returns a - b*Quotient(a, b); it has the sign of a.
func Remainder(a, b Duration) (Duration, error) {
	if err := samePrecision("remainder", a, b); err != nil {
		return Duration{}, err
	}
	if b.ticks == 0 {
		return Duration{}, cxerror.New("remainder by a zero duration").WithCode(cxerror.CodeInvalidInput)
	}
	if b.ticks == -1 {
		return New(0, a.precision), nil
	}
	return New(a.ticks%b.ticks, a.precision), nil
}
