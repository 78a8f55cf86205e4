// File: rounding.go
// Title: Duration Rounding
// Description: Floor, ceiling and round of durations to multiples of a unit,
//              anchored at an optional origin.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package duration

import (
	"math"

	"github.com/msto63/chronox/foundation/clock/internal/arith"
	"github.com/msto63/chronox/foundation/clock/precision"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

type roundMode int

const (
	modeFloor roundMode = iota
	modeCeiling
	modeRound
)

func (m roundMode) String() string {
	switch m {
	case modeFloor:
		return "floor"
	case modeCeiling:
		return "ceiling"
	}
	return "round"
}

// Floor returns the left edge of the interval of width n*p containing d.
// Intervals are anchored at zero.
func Floor(d Duration, p precision.Precision, n int64) (Duration, error) {
	return roundFrom(d, p, n, New(0, p), modeFloor)
}

// Ceiling returns the right edge of the interval of width n*p containing d,
// or d itself when it lies on an edge.
func Ceiling(d Duration, p precision.Precision, n int64) (Duration, error) {
	return roundFrom(d, p, n, New(0, p), modeCeiling)
}

// Round returns the nearer of Floor and Ceiling; ties go to Ceiling.
func Round(d Duration, p precision.Precision, n int64) (Duration, error) {
	return roundFrom(d, p, n, New(0, p), modeRound)
}

// FloorFrom is Floor with intervals anchored at origin. origin must not be
// finer than d. The result has the finer of p and the origin precision, so a
// day origin keeps a floor to weeks aligned to that day.
func FloorFrom(d Duration, p precision.Precision, n int64, origin Duration) (Duration, error) {
	return roundFrom(d, p, n, origin, modeFloor)
}

// CeilingFrom is Ceiling with intervals anchored at origin.
func CeilingFrom(d Duration, p precision.Precision, n int64, origin Duration) (Duration, error) {
	return roundFrom(d, p, n, origin, modeCeiling)
}

// RoundFrom is Round with intervals anchored at origin.
func RoundFrom(d Duration, p precision.Precision, n int64, origin Duration) (Duration, error) {
	return roundFrom(d, p, n, origin, modeRound)
}

func roundFrom(d Duration, p precision.Precision, n int64, origin Duration, mode roundMode) (Duration, error) {
	op := "duration " + mode.String()
	if d.precision.IsCalendrical() != p.IsCalendrical() {
		return Duration{}, cxerror.Precision("can't %s from %s %s precision to %s %s precision",
			mode, d.precision.Family(), d.precision, p.Family(), p).WithOperation(op)
	}
	if p > d.precision {
		return Duration{}, cxerror.Precision("can't %s to a more precise precision: %s is finer than %s",
			mode, p, d.precision).WithOperation(op)
	}
	if n < 1 {
		return Duration{}, cxerror.OutOfRange("n", n, 1, math.MaxInt64).WithOperation(op)
	}

	// factor: units of d.precision per unit of p.
	factor, _ := precision.Ratio(p, d.precision)
	width, ok := arith.Mul(factor, n)
	if !ok {
		return Duration{}, cxerror.Overflow(op)
	}

	if origin.precision.IsCalendrical() != d.precision.IsCalendrical() || origin.precision > d.precision {
		return Duration{}, cxerror.Precision("origin precision %s must be equal to or coarser than %s", origin.precision, d.precision).
			WithOperation(op)
	}
	o, err := Cast(origin, d.precision)
	if err != nil {
		return Duration{}, err
	}

	delta, ok := arith.Sub(d.ticks, o.ticks)
	if !ok {
		return Duration{}, cxerror.Overflow(op)
	}

	q := arith.FloorDiv(delta, width)
	r := arith.FloorMod(delta, width)
	switch mode {
	case modeCeiling:
		if r != 0 {
			q++
		}
	case modeRound:
		if r >= width-r {
			q++
		}
	}

	units, ok := arith.Mul(q, n)
	if !ok {
		return Duration{}, cxerror.Overflow(op)
	}
	rp := p
	if origin.precision > rp {
		rp = origin.precision
	}
	res, err := Cast(New(units, p), rp)
	if err != nil {
		return Duration{}, err
	}
	shift, err := Cast(origin, rp)
	if err != nil {
		return Duration{}, err
	}
	return Add(res, shift)
}
