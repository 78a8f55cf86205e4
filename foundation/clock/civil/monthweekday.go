// File: monthweekday.go
// Title: Month-Weekday Algorithms
// Description: Conversion between days and the nth weekday of a month, and
//              the last index of a weekday in a month.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package civil

import "github.com/msto63/chronox/foundation/clock/weekday"

// DaysFromMonthWeekday returns the day of the index-th wd of month y-m.
// index past the last occurrence continues into the next month.
func DaysFromMonthWeekday(y, m int64, wd weekday.Weekday, index int64) int64 {
	first := DaysFromCivil(y, m, 1)
	return first + weekday.OfDays(first).DaysUntil(wd) + 7*(index-1)
}

// LastIndex returns how many times wd occurs in month y-m (4 or 5).
func LastIndex(y, m int64, wd weekday.Weekday) int64 {
	first := DaysFromCivil(y, m, 1)
	delta := weekday.OfDays(first).DaysUntil(wd)
	return (DaysInMonth(y, m)-1-delta)/7 + 1
}

// MonthWeekdayFromDays returns the year, month, weekday and occurrence
// index of day z.
func MonthWeekdayFromDays(z int64) (y, m int64, wd weekday.Weekday, index int64) {
	y, m, d := CivilFromDays(z)
	return y, m, weekday.OfDays(z), (d-1)/7 + 1
}
