// File: rules.go
// Title: Calendar Rules
// Description: Per-kind dispatch of ranges, last-value rules, invalidity
//              checks and day conversions to the civil algorithms.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package calendar

import (
	"github.com/msto63/chronox/foundation/clock/civil"
	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/foundation/clock/weekday"
)

// rules binds a calendar kind to its configuration and dispatches every
// element-level algorithm to the civil package.
type rules struct {
	kind     Kind
	start    int64            // fiscal start month or week start weekday
	encoding weekday.Encoding // year_month_weekday day codes
}

func (r rules) weekStart() weekday.Weekday {
	if r.kind == IsoYearWeekDay {
		return weekday.Monday
	}
	return weekday.Weekday(r.start)
}

// weekdayOf decodes a year_month_weekday day code. Codes are range checked
// on construction.
func (r rules) weekdayOf(code int64) weekday.Weekday {
	wd, err := weekday.FromCode(int(code), r.encoding)
	if err != nil {
		return weekday.Sunday
	}
	return wd
}

func (r rules) rangeOf(field Field) civil.Range {
	switch field {
	case Year:
		return civil.YearRange
	case Quarter:
		return civil.QuarterRange
	case Month:
		return civil.MonthRange
	case Week:
		return civil.WeekRange
	case Index:
		return civil.WeekdayIndexRange
	case Hour:
		return civil.HourRange
	case Minute:
		return civil.MinuteRange
	case Second:
		return civil.SecondRange
	case Millisecond:
		return civil.MillisecondRange
	case Microsecond:
		return civil.MicrosecondRange
	case Nanosecond:
		return civil.NanosecondRange
	}
	switch r.kind {
	case YearMonthDay:
		return civil.DayRange
	case YearQuarterDay:
		return civil.QuarterDayRange
	case YearDay:
		return civil.YearDayRange
	}
	return civil.WeekdayRange
}

// first returns the smallest value of field.
func (r rules) first(field Field) int64 {
	return r.rangeOf(field).Min
}

// last returns the largest valid value of field given the coarser fields
// of x.
func (r rules) last(x Fields, field Field) int64 {
	if field != Week && field != Day && field != Index {
		return r.rangeOf(field).Max
	}
	switch r.kind {
	case YearMonthDay:
		return civil.DaysInMonth(x.Year, x.Month)
	case YearMonthWeekday:
		if field == Index {
			return civil.LastIndex(x.Year, x.Month, r.weekdayOf(x.Day))
		}
		return 7
	case IsoYearWeekDay, YearWeekDay:
		if field == Week {
			return civil.LastWeek(x.Year, r.weekStart())
		}
		return 7
	case YearQuarterDay:
		return civil.DaysInQuarter(x.Year, x.Quarter, r.start)
	}
	return civil.DaysInYear(x.Year)
}

// invalid reports whether x, stored at precision p, names a day that does
// not exist.
func (r rules) invalid(x Fields, p precision.Precision) bool {
	switch r.kind {
	case IsoYearWeekDay, YearWeekDay:
		return p >= precision.Week && x.Week > r.last(x, Week)
	case YearMonthWeekday:
		return p >= precision.Day && x.Index > r.last(x, Index)
	}
	return p >= precision.Day && x.Day > r.last(x, Day)
}

// days returns the day number of the date fields of x. Out of range days,
// weeks and indices continue linearly into the following unit.
func (r rules) days(x Fields) int64 {
	switch r.kind {
	case YearMonthDay:
		return civil.DaysFromCivil(x.Year, x.Month, x.Day)
	case YearMonthWeekday:
		return civil.DaysFromMonthWeekday(x.Year, x.Month, r.weekdayOf(x.Day), x.Index)
	case IsoYearWeekDay, YearWeekDay:
		return civil.DaysFromWeekly(x.Year, x.Week, x.Day, r.weekStart())
	case YearQuarterDay:
		return civil.DaysFromQuarterly(x.Year, x.Quarter, x.Day, r.start)
	}
	return civil.DaysFromOrdinal(x.Year, x.Day)
}

// fromDays returns the date fields of day z.
func (r rules) fromDays(z int64) Fields {
	var x Fields
	switch r.kind {
	case YearMonthDay:
		x.Year, x.Month, x.Day = civil.CivilFromDays(z)
	case YearMonthWeekday:
		var wd weekday.Weekday
		x.Year, x.Month, wd, x.Index = civil.MonthWeekdayFromDays(z)
		x.Day = int64(wd.Code(r.encoding))
	case IsoYearWeekDay, YearWeekDay:
		x.Year, x.Week, x.Day = civil.WeeklyFromDays(z, r.weekStart())
	case YearQuarterDay:
		x.Year, x.Quarter, x.Day = civil.QuarterlyFromDays(z, r.start)
	default:
		x.Year, x.Day = civil.OrdinalFromDays(z)
	}
	return x
}

// nextUnitDay returns the first day of the unit after the one holding
// the invalid field of x.
func (r rules) nextUnitDay(x Fields) int64 {
	switch r.kind {
	case YearMonthDay, YearMonthWeekday:
		ny, nm := civil.AddMonths(x.Year, x.Month, 1)
		return civil.DaysFromCivil(ny, nm, 1)
	case IsoYearWeekDay, YearWeekDay:
		return civil.WeekYearStart(x.Year+1, r.weekStart())
	case YearQuarterDay:
		ny, nq := civil.AddQuarters(x.Year, x.Quarter, 1)
		return civil.DaysFromQuarterly(ny, nq, 1, r.start)
	}
	return civil.DaysFromOrdinal(x.Year+1, 1)
}

func (r rules) leap(year int64) bool {
	switch r.kind {
	case IsoYearWeekDay, YearWeekDay:
		return civil.WeekLeap(year, r.weekStart())
	case YearQuarterDay:
		return civil.FiscalLeap(year, r.start)
	}
	return civil.IsLeap(year)
}

// fill sets the fields finer than from and up to to to their first or
// last values, coarsest first so that irregular lengths see their
// coarser fields.
func (r rules) fill(x Fields, from, to precision.Precision, last bool) Fields {
	have := map[Field]bool{}
	for _, f := range r.kind.Fields(from) {
		have[f] = true
	}
	for _, f := range r.kind.Fields(to) {
		if have[f] || (from.IsSubsecond() && f.Precision().IsSubsecond()) {
			continue
		}
		v := r.first(f)
		if last {
			v = r.last(x, f)
			if r.kind == YearMonthWeekday && f == Index {
				v = 4
			}
		}
		*x.ref(f) = v
	}
	return x
}
