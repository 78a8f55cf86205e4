// Package weekday maps days since the epoch to weekdays and translates
// between the two 1-7 weekday numbering conventions.
//
// Package: weekday
// Title: Weekday Codes
// Description: Weekdays of day counts, weekday arithmetic and the Western and
//              ISO 1-7 numberings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
package weekday

import (
	"strconv"
	"strings"

	"github.com/msto63/chronox/foundation/clock/internal/arith"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Weekday is a day of the week, Sunday = 0.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var names = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// String returns the English name.
func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return "Weekday(?)"
	}
	return names[w]
}

// Abbrev returns the three-letter English abbreviation.
func (w Weekday) Abbrev() string {
	return w.String()[:3]
}

// Encoding is a numbering of weekdays as codes 1-7.
type Encoding int

const (
	// Western numbers Sunday 1 through Saturday 7.
	Western Encoding = iota
	// ISO numbers Monday 1 through Sunday 7.
	ISO
)

// String returns "western" or "iso".
func (e Encoding) String() string {
	if e == ISO {
		return "iso"
	}
	return "western"
}

// ParseEncoding parses "western" or "iso".
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "western", "":
		return Western, nil
	case "iso":
		return ISO, nil
	}
	return Western, cxerror.New("unknown weekday encoding: " + s).WithCode(cxerror.CodeInvalidFormat)
}

// FromCode returns the weekday numbered code under e.
func FromCode(code int, e Encoding) (Weekday, error) {
	if code < 1 || code > 7 {
		return 0, cxerror.OutOfRange("weekday", int64(code), 1, 7)
	}
	if e == ISO {
		return Weekday(code % 7), nil
	}
	return Weekday(code - 1), nil
}

// Code returns the 1-7 code of w under e.
func (w Weekday) Code(e Encoding) int {
	if e == ISO {
		if w == Sunday {
			return 7
		}
		return int(w)
	}
	return int(w) + 1
}

// Parse accepts an English name or abbreviation, case insensitive.
func Parse(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		full := strings.ToLower(n)
		if name == full || name == full[:3] {
			return Weekday(i), nil
		}
	}
	return 0, cxerror.New("unknown weekday: " + s).WithCode(cxerror.CodeInvalidFormat)
}

// ParseIn accepts a weekday name like Parse or a 1-7 code numbered under e.
func ParseIn(s string, e Encoding) (Weekday, error) {
	if code, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return FromCode(code, e)
	}
	return Parse(s)
}

// OfDays returns the weekday of the day days after 1970-01-01, a Thursday.
func OfDays(days int64) Weekday {
	return Weekday(arith.FloorMod(days+4, 7))
}

// Add returns the weekday n days after w.
func (w Weekday) Add(n int64) Weekday {
	return Weekday(arith.FloorMod(int64(w)+arith.FloorMod(n, 7), 7))
}

// DaysUntil returns the number of days in [0, 6] from w forward to target.
func (w Weekday) DaysUntil(target Weekday) int64 {
	return arith.FloorMod(int64(target)-int64(w), 7)
}

// DaysSince returns the number of days in [0, 6] from target forward to w.
func (w Weekday) DaysSince(target Weekday) int64 {
	return arith.FloorMod(int64(w)-int64(target), 7)
}
