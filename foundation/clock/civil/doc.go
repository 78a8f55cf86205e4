// Package civil holds the calendar algorithms: range checks, leap and
// length rules, and closed-form conversions between calendar fields and
// days since 1970-01-01 for every supported calendar.
//
// Functions here work on plain int64 fields and never allocate. They do not
// validate cross-field consistency; conversions from fields to days are
// linear in the finest field, so an out-of-bounds day (February 30) maps to
// the day it overflows to. Callers decide whether that is acceptable.
//
// Package: civil
// Title: Calendar Algorithms
// Description: Closed-form integer algorithms behind every calendar: ranges,
//              leap and length rules and conversions between fields and days.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
package civil
