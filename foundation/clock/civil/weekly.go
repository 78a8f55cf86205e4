// File: weekly.go
// Title: Week Calendar Algorithms
// Description: Week-year starts for any week start day, last week of a year,
//              and conversions between days and year-week-day fields.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package civil

import "github.com/msto63/chronox/foundation/clock/weekday"

// Week-based years start on the start weekday on or before January 4th,
// so week 1 holds at least four days of the new calendar year. ISO weeks
// are the Monday instance.

// WeekYearStart returns the first day of week 1 of week-based year y.
func WeekYearStart(y int64, start weekday.Weekday) int64 {
	jan4 := DaysFromCivil(y, 1, 4)
	return jan4 - weekday.OfDays(jan4).DaysSince(start)
}

// LastWeek returns the number of weeks in week-based year y (52 or 53).
func LastWeek(y int64, start weekday.Weekday) int64 {
	return (WeekYearStart(y+1, start) - WeekYearStart(y, start)) / 7
}

// DaysFromWeekly returns the day of day d (1 = start weekday) of week w of
// week-based year y.
func DaysFromWeekly(y, w, d int64, start weekday.Weekday) int64 {
	return WeekYearStart(y, start) + 7*(w-1) + d - 1
}

// WeeklyFromDays returns the week-based year, week and day of week of z.
func WeeklyFromDays(z int64, start weekday.Weekday) (y, w, d int64) {
	y, _, _ = CivilFromDays(z)
	switch {
	case z >= WeekYearStart(y+1, start):
		y++
	case z < WeekYearStart(y, start):
		y--
	}
	delta := z - WeekYearStart(y, start)
	return y, delta/7 + 1, delta%7 + 1
}

// IsoLastWeek returns the number of ISO weeks in year y.
func IsoLastWeek(y int64) int64 {
	return LastWeek(y, weekday.Monday)
}

// WeekLeap reports whether week-based year y has 53 weeks.
func WeekLeap(y int64, start weekday.Weekday) bool {
	return LastWeek(y, start) == 53
}
