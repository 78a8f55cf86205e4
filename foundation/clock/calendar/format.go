// File: format.go
// Title: Plain Rendering
// Description: Non-localised text rendering of calendar values for
//              diagnostics and the command line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package calendar

import (
	"fmt"
	"strings"

	"github.com/msto63/chronox/foundation/clock/precision"
)

// NA is the rendering of a null element.
const NA = "NA"

// Strings renders every element without localisation, e.g. "2021-02-28",
// "2019-Q4-01", "2015-W53-4", "2021-060" or "2021-02-Sun[5]". Time fields
// follow a "T", as in "2021-02-28T13:45:10.250".
func (v Vector) Strings() []string {
	out := make([]string, v.Len())
	for i := range out {
		x, ok := v.At(i)
		if !ok {
			out[i] = NA
			continue
		}
		out[i] = v.format(x)
	}
	return out
}

func formatYear(y int64) string {
	if y < 0 {
		return fmt.Sprintf("-%04d", -y)
	}
	return fmt.Sprintf("%04d", y)
}

func (v Vector) format(x Fields) string {
	var b strings.Builder
	b.WriteString(formatYear(x.Year))
	p := v.precision

	switch v.kind {
	case YearMonthDay:
		if p >= precision.Month {
			fmt.Fprintf(&b, "-%02d", x.Month)
		}
		if p >= precision.Day {
			fmt.Fprintf(&b, "-%02d", x.Day)
		}
	case YearMonthWeekday:
		if p >= precision.Month {
			fmt.Fprintf(&b, "-%02d", x.Month)
		}
		if p >= precision.Day {
			fmt.Fprintf(&b, "-%s[%d]", v.weekdayOf(x.Day).Abbrev(), x.Index)
		}
	case IsoYearWeekDay, YearWeekDay:
		if p >= precision.Week {
			fmt.Fprintf(&b, "-W%02d", x.Week)
		}
		if p >= precision.Day {
			fmt.Fprintf(&b, "-%d", x.Day)
		}
	case YearQuarterDay:
		if p >= precision.Quarter {
			fmt.Fprintf(&b, "-Q%d", x.Quarter)
		}
		if p >= precision.Day {
			fmt.Fprintf(&b, "-%02d", x.Day)
		}
	case YearDay:
		if p >= precision.Day {
			fmt.Fprintf(&b, "-%03d", x.Day)
		}
	}

	if p >= precision.Hour {
		fmt.Fprintf(&b, "T%02d", x.Hour)
	}
	if p >= precision.Minute {
		fmt.Fprintf(&b, ":%02d", x.Minute)
	}
	if p >= precision.Second {
		fmt.Fprintf(&b, ":%02d", x.Second)
	}
	switch p {
	case precision.Millisecond:
		fmt.Fprintf(&b, ".%03d", x.Subsecond)
	case precision.Microsecond:
		fmt.Fprintf(&b, ".%06d", x.Subsecond)
	case precision.Nanosecond:
		fmt.Fprintf(&b, ".%09d", x.Subsecond)
	}
	return b.String()
}

// String renders the calendar name, precision and elements.
func (v Vector) String() string {
	return fmt.Sprintf("<%s<%s>[%d]> %s", v.kind.Name(), v.precision, v.Len(), strings.Join(v.Strings(), " "))
}
