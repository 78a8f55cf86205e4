// File: gregorian.go
// Title: Gregorian Algorithms
// Description: Leap years, month lengths, days-from-civil and its inverse,
//              and ordinal day conversions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package civil

import "github.com/msto63/chronox/foundation/clock/internal/arith"

// IsLeap reports whether y is a Gregorian leap year.
func IsLeap(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

var monthDays = [13]int64{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of month m of year y.
func DaysInMonth(y, m int64) int64 {
	if m == 2 && IsLeap(y) {
		return 29
	}
	return monthDays[m]
}

// DaysFromCivil returns the days since 1970-01-01 of y-m-d. m must be in
// [1, 12]; d may be any value.
func DaysFromCivil(y, m, d int64) int64 {
	if m <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400
	mp := m + 9
	if m > 2 {
		mp = m - 3
	}
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// CivilFromDays is the inverse of DaysFromCivil.
func CivilFromDays(z int64) (y, m, d int64) {
	z += 719468
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(y int64) int64 {
	if IsLeap(y) {
		return 366
	}
	return 365
}

// DaysFromOrdinal returns the days since the epoch of day yday of year y.
func DaysFromOrdinal(y, yday int64) int64 {
	return DaysFromCivil(y, 1, 1) + yday - 1
}

// OrdinalFromDays returns the year and day of year of day z.
func OrdinalFromDays(z int64) (y, yday int64) {
	y, _, _ = CivilFromDays(z)
	return y, z - DaysFromCivil(y, 1, 1) + 1
}

// AddMonths adds n months to y-m, carrying into the year.
func AddMonths(y, m, n int64) (int64, int64) {
	total := y*12 + (m - 1) + n
	return floorDiv(total, 12), floorMod(total, 12) + 1
}

func floorDiv(a, b int64) int64 { return arith.FloorDiv(a, b) }
func floorMod(a, b int64) int64 { return arith.FloorMod(a, b) }
