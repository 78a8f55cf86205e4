// Package calendar provides vectors of calendar values for six calendars:
// year-month-day, year-month-weekday, ISO year-week-day, fiscal
// year-quarter-day, year-week-day with a configurable week start, and
// year-day.
//
// # Vectors
//
// A Vector holds Fields for one calendar Kind at one precision, plus the
// single configuration value the kind needs (fiscal start month or week
// start). Elements may be null; a null element stays null through every
// operation.
//
//	v, err := calendar.Of(calendar.YearMonthDay, precision.Day, []calendar.Fields{
//		{Year: 2021, Month: 2, Day: 28},
//	})
//
// Construction range checks every field. Values whose fields are in range
// but do not name a real day, such as February 30th, are legal and are
// reported by InvalidDetect. They must be repaired with InvalidResolve
// before converting to time points.
//
// # Arithmetic
//
// Plus adds years, quarters, months or weeks to the coarse fields directly,
// without going through days:
//
//	next, err := v.Plus(nullable.Of(duration.Months(1)))
//
// Conversion between calendars goes through naive time points with
// Convert, AsNaive, AsSys and FromTimePoints.
//
// Package: calendar
// Title: Multi-Calendar Vectors
// Description: Calendar values for six calendars with validation, boundary
//              adjustment, invalid date handling, calendar arithmetic and
//              conversion through time points.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
package calendar
