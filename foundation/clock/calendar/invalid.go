// File: invalid.go
// Title: Invalid Dates
// Description: Detection of calendar values that name no real day and their
//              resolution with a policy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package calendar

import (
	"strings"

	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Policy selects how InvalidResolve repairs a date that does not exist.
type Policy uint8

const (
	// PolicyError fails, naming every invalid position.
	PolicyError Policy = iota
	// PolicyPrevious moves to the last moment of the last valid day.
	PolicyPrevious
	// PolicyPreviousDay moves to the last valid day, keeping the time.
	PolicyPreviousDay
	// PolicyNext moves to the first moment of the next unit.
	PolicyNext
	// PolicyNextDay moves to the first day of the next unit, keeping the time.
	PolicyNextDay
	// PolicyOverflow counts the excess days past the end of the unit and
	// clears the time.
	PolicyOverflow
	// PolicyOverflowDay counts the excess days past the end of the unit,
	// keeping the time.
	PolicyOverflowDay
	// PolicyNA turns invalid elements into nulls.
	PolicyNA
)

var policyNames = [...]string{
	"error", "previous", "previous-day", "next", "next-day", "overflow", "overflow-day", "na",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "unknown"
}

// ParsePolicy parses a policy name. The empty string means PolicyError.
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PolicyError, nil
	}
	s = strings.ReplaceAll(s, "_", "-")
	for i, name := range policyNames {
		if name == s {
			return Policy(i), nil
		}
	}
	return 0, cxerror.Newf("unknown invalid date policy %q", s).
		WithCode(cxerror.CodeInvalidFormat).
		WithDetail("value", s).
		WithDetail("allowed", policyNames[:])
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// InvalidDetect reports for every element whether it names a day that does
// not exist, such as February 30th or week 53 of a 52 week year.
func (v Vector) InvalidDetect() nullable.Vector[bool] {
	out, _ := nullable.Map(v.data, "invalid detect", func(x Fields) (bool, error) {
		return v.invalid(x, v.precision), nil
	})
	return out
}

// InvalidAny reports whether any element is invalid.
func (v Vector) InvalidAny() bool {
	return v.InvalidCount() > 0
}

// InvalidCount returns the number of invalid elements.
func (v Vector) InvalidCount() int {
	return len(v.invalidPositions())
}

func (v Vector) invalidPositions() []int {
	var out []int
	for i := 0; i < v.Len(); i++ {
		if x, ok := v.data.At(i); ok && v.invalid(x, v.precision) {
			out = append(out, i)
		}
	}
	return out
}

// InvalidResolve repairs every invalid element according to policy. Valid
// elements are returned unchanged.
func (v Vector) InvalidResolve(policy Policy) (Vector, error) {
	const op = "invalid resolve"
	if policy == PolicyError {
		if positions := v.invalidPositions(); len(positions) > 0 {
			return Vector{}, cxerror.UnresolvedInvalid(op, positions)
		}
		return v, nil
	}
	data, err := nullable.MapOptional(v.data, op, func(x Fields) (Fields, bool, error) {
		if !v.invalid(x, v.precision) {
			return x, true, nil
		}
		if policy == PolicyNA {
			return Fields{}, false, nil
		}
		return v.resolve(x, policy), true, nil
	})
	if err != nil {
		return Vector{}, err
	}
	return v.with(data, v.precision), nil
}

func (v Vector) resolve(x Fields, policy Policy) Fields {
	var z int64
	keepTime := false
	switch policy {
	case PolicyPrevious, PolicyPreviousDay:
		z = v.nextUnitDay(x) - 1
		keepTime = policy == PolicyPreviousDay
	case PolicyNext, PolicyNextDay:
		z = v.nextUnitDay(x)
		keepTime = policy == PolicyNextDay
	default:
		z = v.days(v.fill(x, v.precision, precision.Day, false))
		keepTime = policy == PolicyOverflowDay
	}

	out := v.fromDays(z)
	switch {
	case keepTime:
		out.setTimeOfDay(x.timeOfDay())
	case policy == PolicyPrevious && v.precision > precision.Day:
		out = v.fill(out, precision.Day, v.precision, true)
	}
	return out.truncate(v.kind, v.precision)
}
