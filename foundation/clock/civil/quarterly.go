// File: quarterly.go
// Title: Fiscal Quarter Algorithms
// Description: Quarter boundaries and lengths for a fiscal start month,
//              conversions to and from days, quarter carry and fiscal leap
//              years.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package civil

// Fiscal years are named after the calendar year in which they end. With a
// start month s > 1, fiscal year y runs from month s of y-1 to month s-1
// of y; with s == 1 it is the calendar year.

// QuarterStart returns the calendar year and month on which quarter q of
// fiscal year y begins.
func QuarterStart(y, q, start int64) (cy, cm int64) {
	base := y
	if start > 1 {
		base--
	}
	offset := (start - 1) + 3*(q-1)
	return base + offset/12, offset%12 + 1
}

// DaysFromQuarterly returns the days since the epoch of day d of quarter q
// of fiscal year y.
func DaysFromQuarterly(y, q, d, start int64) int64 {
	cy, cm := QuarterStart(y, q, start)
	return DaysFromCivil(cy, cm, 1) + d - 1
}

// DaysInQuarter returns the length of quarter q of fiscal year y (90-92).
func DaysInQuarter(y, q, start int64) int64 {
	ny, nq := AddQuarters(y, q, 1)
	return DaysFromQuarterly(ny, nq, 1, start) - DaysFromQuarterly(y, q, 1, start)
}

// QuarterlyFromDays returns the fiscal year, quarter and day of quarter of
// day z.
func QuarterlyFromDays(z, start int64) (y, q, d int64) {
	cy, cm, _ := CivilFromDays(z)
	y = cy
	if start > 1 && cm >= start {
		y++
	}
	q = ((cm-start+12)%12)/3 + 1
	return y, q, z - DaysFromQuarterly(y, q, 1, start) + 1
}

// FiscalLeap reports whether fiscal year y contains a February 29th.
func FiscalLeap(y, start int64) bool {
	if start == 2 {
		return IsLeap(y - 1)
	}
	return IsLeap(y)
}

// AddQuarters adds n quarters to y-q. Quarters cycle mod 4 whatever the
// fiscal start.
func AddQuarters(y, q, n int64) (int64, int64) {
	total := y*4 + (q - 1) + n
	return floorDiv(total, 4), floorMod(total, 4) + 1
}
