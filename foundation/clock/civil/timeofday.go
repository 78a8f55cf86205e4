// File: timeofday.go
// Title: Time of Day
// Description: Splitting tick counts into days and time of day and joining
//              them back, per precision.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package civil

import (
	"github.com/msto63/chronox/foundation/clock/internal/arith"
	"github.com/msto63/chronox/foundation/clock/precision"
)

// TimeOfDay holds the sub-day fields. Subsecond counts units of the
// subsecond precision in use.
type TimeOfDay struct {
	Hour, Minute, Second, Subsecond int64
}

func ticksPerDay(p precision.Precision) int64 {
	num, _ := precision.Ratio(precision.Day, p)
	return num
}

// SplitTicks splits ticks of precision p (day or finer) since the epoch
// into whole days and the time of day.
func SplitTicks(ticks int64, p precision.Precision) (days int64, tod TimeOfDay) {
	perDay := ticksPerDay(p)
	days = floorDiv(ticks, perDay)
	rem := floorMod(ticks, perDay)

	if p.IsSubsecond() {
		f, _ := precision.SubsecondFactor(p)
		tod.Subsecond = rem % f
		rem /= f
	}
	switch {
	case p >= precision.Second:
		tod.Hour, tod.Minute, tod.Second = rem/3600, rem/60%60, rem%60
	case p == precision.Minute:
		tod.Hour, tod.Minute = rem/60, rem%60
	case p == precision.Hour:
		tod.Hour = rem
	}
	return days, tod
}

// JoinTicks is the inverse of SplitTicks. It reports false on overflow.
func JoinTicks(days int64, tod TimeOfDay, p precision.Precision) (int64, bool) {
	var rem int64
	switch {
	case p >= precision.Second:
		rem = tod.Hour*3600 + tod.Minute*60 + tod.Second
	case p == precision.Minute:
		rem = tod.Hour*60 + tod.Minute
	case p == precision.Hour:
		rem = tod.Hour
	}
	if p.IsSubsecond() {
		f, _ := precision.SubsecondFactor(p)
		rem = rem*f + tod.Subsecond
	}
	base, ok := arith.Mul(days, ticksPerDay(p))
	if !ok {
		return 0, false
	}
	return arith.Add(base, rem)
}
