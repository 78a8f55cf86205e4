// File: kind.go
// Title: Calendar Kinds
// Description: The closed set of calendars a Vector can hold, with the
//              precisions each one stores and the fields each precision
//              carries.
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

	"github.com/msto63/chronox/foundation/clock/precision"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Kind identifies a calendar.
type Kind uint8

const (
	YearMonthDay Kind = iota
	YearMonthWeekday
	IsoYearWeekDay
	YearQuarterDay
	YearWeekDay
	YearDay
)

var kindNames = [...]string{
	YearMonthDay:     "year_month_day",
	YearMonthWeekday: "year_month_weekday",
	IsoYearWeekDay:   "iso_year_week_day",
	YearQuarterDay:   "year_quarter_day",
	YearWeekDay:      "year_week_day",
	YearDay:          "year_day",
}

var kindAliases = map[string]Kind{
	"ymd": YearMonthDay,
	"ymw": YearMonthWeekday,
	"iso": IsoYearWeekDay,
	"yqd": YearQuarterDay,
	"ywd": YearWeekDay,
	"yd":  YearDay,
}

// Kinds returns every calendar kind.
func Kinds() []Kind {
	return []Kind{YearMonthDay, YearMonthWeekday, IsoYearWeekDay, YearQuarterDay, YearWeekDay, YearDay}
}

// Name returns the calendar name, e.g. "year_quarter_day".
func (k Kind) Name() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) String() string { return k.Name() }

// ParseKind accepts a calendar name or its short alias ("ymd", "iso", ...).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, cxerror.Newf("unknown calendar %q", s).
		WithCode(cxerror.CodeInvalidFormat).
		WithDetail("value", s)
}

var timePrecisions = []precision.Precision{
	precision.Hour, precision.Minute, precision.Second,
	precision.Millisecond, precision.Microsecond, precision.Nanosecond,
}

// Precisions returns the precisions the calendar can store, coarsest first.
func (k Kind) Precisions() []precision.Precision {
	var date []precision.Precision
	switch k {
	case YearMonthDay, YearMonthWeekday:
		date = []precision.Precision{precision.Year, precision.Month, precision.Day}
	case IsoYearWeekDay, YearWeekDay:
		date = []precision.Precision{precision.Year, precision.Week, precision.Day}
	case YearQuarterDay:
		date = []precision.Precision{precision.Year, precision.Quarter, precision.Day}
	case YearDay:
		date = []precision.Precision{precision.Year, precision.Day}
	}
	return append(date, timePrecisions...)
}

// Supports reports whether the calendar can store precision p.
func (k Kind) Supports(p precision.Precision) bool {
	for _, q := range k.Precisions() {
		if q == p {
			return true
		}
	}
	return false
}

// CountPrecisions returns the precisions CountBetween accepts.
func (k Kind) CountPrecisions() []precision.Precision {
	switch k {
	case YearMonthDay, YearMonthWeekday:
		return []precision.Precision{precision.Year, precision.Quarter, precision.Month}
	case YearQuarterDay:
		return []precision.Precision{precision.Year, precision.Quarter}
	}
	return []precision.Precision{precision.Year}
}

func (k Kind) requireSupported(op string, p precision.Precision) error {
	if k.Supports(p) {
		return nil
	}
	return cxerror.Precision("%s does not support %s precision", k.Name(), p).
		WithOperation(op).
		WithDetail("calendar", k.Name()).
		WithDetail("precision", p.String())
}

// Fields returns the fields stored at precision p, coarsest first.
func (k Kind) Fields(p precision.Precision) []Field {
	var out []Field
	for _, f := range k.allFields() {
		fp := f.Precision()
		if fp.IsSubsecond() {
			if fp == p {
				out = append(out, f)
			}
			continue
		}
		if fp <= p {
			out = append(out, f)
		}
	}
	return out
}

func (k Kind) allFields() []Field {
	var date []Field
	switch k {
	case YearMonthDay:
		date = []Field{Year, Month, Day}
	case YearMonthWeekday:
		date = []Field{Year, Month, Day, Index}
	case IsoYearWeekDay, YearWeekDay:
		date = []Field{Year, Week, Day}
	case YearQuarterDay:
		date = []Field{Year, Quarter, Day}
	case YearDay:
		date = []Field{Year, Day}
	}
	return append(date, Hour, Minute, Second, Millisecond, Microsecond, Nanosecond)
}

// Has reports whether field belongs to the calendar at any precision.
func (k Kind) Has(field Field) bool {
	for _, f := range k.allFields() {
		if f == field {
			return true
		}
	}
	return false
}
