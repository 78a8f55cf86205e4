// File: check.go
// Title: Field Ranges
// Description: Static valid ranges of every calendar field and the range
//              check producing RangeErrors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package civil

import (
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Range is an inclusive interval of valid field values.
type Range struct {
	Min, Max int64
}

// Contains reports whether v is within r.
func (r Range) Contains(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// Check returns a RangeError naming field when v is outside r.
func (r Range) Check(field string, v int64) error {
	if r.Contains(v) {
		return nil
	}
	return cxerror.OutOfRange(field, v, r.Min, r.Max)
}

// Field ranges shared by all calendars.
var (
	YearRange        = Range{-32767, 32767}
	MonthRange       = Range{1, 12}
	DayRange         = Range{1, 31}
	HourRange        = Range{0, 23}
	MinuteRange      = Range{0, 59}
	SecondRange      = Range{0, 59}
	MillisecondRange = Range{0, 999}
	MicrosecondRange = Range{0, 999_999}
	NanosecondRange  = Range{0, 999_999_999}

	QuarterRange      = Range{1, 4}
	QuarterDayRange   = Range{1, 92}
	WeekRange         = Range{1, 53}
	WeekdayRange      = Range{1, 7}
	WeekdayIndexRange = Range{1, 5}
	YearDayRange      = Range{1, 366}
	FiscalStartRange  = Range{1, 12}
)
