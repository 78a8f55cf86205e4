// File: precision.go
// Title: Precision Model
// Description: The ordered set of granularities shared by durations, time
//              points and calendars, with exact unit lengths and the rules
//              for finding a common precision of two values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package precision

import (
	"strings"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Precision is a granularity, ordered from coarsest to finest.
type Precision uint8

const (
	Year Precision = iota
	Quarter
	Month
	Week
	Day
	Hour
	Minute
	Second
	Millisecond
	Microsecond
	Nanosecond
)

var names = [...]string{
	"year", "quarter", "month", "week", "day",
	"hour", "minute", "second", "millisecond", "microsecond", "nanosecond",
}

// Unit lengths in nanoseconds. Year is the average Gregorian year of
// 365.2425 days; quarter and month divide it evenly.
var unitNanos = [...]int64{
	31556952_000000000,
	7889238_000000000,
	2629746_000000000,
	604800_000000000,
	86400_000000000,
	3600_000000000,
	60_000000000,
	1_000000000,
	1_000000,
	1_000,
	1,
}

// All returns every precision from coarsest to finest.
func All() []Precision {
	out := make([]Precision, 0, len(names))
	for p := Year; p <= Nanosecond; p++ {
		out = append(out, p)
	}
	return out
}

// String returns the lower-case name of p.
func (p Precision) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return names[p]
}

// Valid reports whether p is one of the defined precisions.
func (p Precision) Valid() bool {
	return p <= Nanosecond
}

// Parse returns the precision named s. Plural forms are accepted.
func Parse(s string) (Precision, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if name == n || name == n+"s" {
			return Precision(i), nil
		}
	}
	return 0, cxerror.New("unknown precision: " + s).
		WithCode(cxerror.CodeInvalidFormat).
		WithDetail("input", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Precision) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Precision) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Compare returns -1 when a is coarser than b, +1 when finer, 0 when equal.
func Compare(a, b Precision) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsCalendrical reports whether p is year, quarter or month. These units
// have no fixed length in days.
func (p Precision) IsCalendrical() bool {
	return p <= Month
}

// IsChronological reports whether p is week or finer.
func (p Precision) IsChronological() bool {
	return p >= Week && p.Valid()
}

// IsSubsecond reports whether p is millisecond or finer.
func (p Precision) IsSubsecond() bool {
	return p >= Millisecond && p.Valid()
}

// Family groups precisions that convert into each other exactly.
// Calendrical precisions are exact multiples of one month; chronological
// precisions are exact multiples of one nanosecond.
func (p Precision) Family() string {
	if p.IsCalendrical() {
		return "calendrical"
	}
	return "chronological"
}

// Common returns the precision both a and b can be cast to without loss:
// the finer of the two, not the coarser. Combining values widens them to
// this precision; Coarser picks the other end. Mixing calendrical and
// chronological precisions is an IncompatibleType error because neither
// divides the other exactly.
func Common(a, b Precision) (Precision, error) {
	if !a.Valid() || !b.Valid() {
		return 0, cxerror.Precision("invalid precision %d or %d", a, b)
	}
	if a.IsCalendrical() != b.IsCalendrical() {
		return 0, cxerror.Incompatible("no common precision for %s and %s", a, b).
			WithDetail("left", a.String()).
			WithDetail("right", b.String())
	}
	if a > b {
		return a, nil
	}
	return b, nil
}

// Coarser returns the coarser of a and b.
func Coarser(a, b Precision) Precision {
	if a < b {
		return a
	}
	return b
}

// Nanoseconds returns the exact length of one unit of p.
func Nanoseconds(p Precision) int64 {
	return unitNanos[p]
}

// Ratio returns num/den in lowest terms such that one unit of from equals
// num/den units of to. Calendrical and chronological units are related
// through the average Gregorian year.
func Ratio(from, to Precision) (num, den int64) {
	a, b := unitNanos[from], unitNanos[to]
	g := gcd(a, b)
	return a / g, b / g
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// SubsecondFactor returns the number of units of p in one second.
func SubsecondFactor(p Precision) (int64, error) {
	switch p {
	case Millisecond:
		return 1_000, nil
	case Microsecond:
		return 1_000_000, nil
	case Nanosecond:
		return 1_000_000_000, nil
	}
	return 0, cxerror.Precision("%s is not a subsecond precision", p)
}

// Require returns a PrecisionError unless lo <= p <= hi.
func Require(op string, p, lo, hi Precision) error {
	if p < lo || p > hi {
		return cxerror.Precision("%s requires a precision between %s and %s, not %s", op, lo, hi, p).
			WithOperation(op).
			WithDetail("precision", p.String())
	}
	return nil
}
