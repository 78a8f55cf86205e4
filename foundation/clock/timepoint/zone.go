// File: zone.go
// Title: Zone Boundary
// Description: The narrow boundary between naive and sys time: UTC and fixed
//              offsets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package timepoint

import (
	"fmt"

	"github.com/msto63/chronox/foundation/clock/duration"
	"github.com/msto63/chronox/foundation/clock/precision"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Zone converts between naive and sys time points. Time zone databases
// live outside this package; they plug in through this interface.
type Zone interface {
	Name() string
	ToSys(naive TimePoint) (TimePoint, error)
	ToNaive(sys TimePoint) (TimePoint, error)
}

type fixedZone struct {
	name   string
	offset int64 // seconds east of UTC
}

// UTC is the zone with a zero offset.
var UTC Zone = fixedZone{name: "UTC"}

// FixedOffset returns a zone a constant number of seconds east of UTC.
func FixedOffset(seconds int64) Zone {
	sign, abs := '+', seconds
	if seconds < 0 {
		sign, abs = '-', -seconds
	}
	return fixedZone{
		name:   fmt.Sprintf("UTC%c%02d:%02d", sign, abs/3600, abs%3600/60),
		offset: seconds,
	}
}

func (z fixedZone) Name() string { return z.name }

func (z fixedZone) ToSys(t TimePoint) (TimePoint, error) {
	if t.clock != Naive {
		return TimePoint{}, cxerror.Incompatible("%s expects a naive time point, got %s", z.name, t.clock)
	}
	return z.shift(t, Sys, -z.offset)
}

func (z fixedZone) ToNaive(t TimePoint) (TimePoint, error) {
	if t.clock != Sys {
		return TimePoint{}, cxerror.Incompatible("%s expects a sys time point, got %s", z.name, t.clock)
	}
	return z.shift(t, Naive, z.offset)
}

// shift adds seconds and retags the clock. Day and coarser inputs are cast
// to seconds first unless the offset is zero.
func (z fixedZone) shift(t TimePoint, to Clock, seconds int64) (TimePoint, error) {
	if seconds == 0 {
		return TimePoint{clock: to, since: t.since}, nil
	}
	p := t.Precision()
	if p < precision.Second {
		p = precision.Second
	}
	base, err := Cast(t, p)
	if err != nil {
		return TimePoint{}, err
	}
	off, err := duration.Cast(duration.Seconds(seconds), p)
	if err != nil {
		return TimePoint{}, err
	}
	out, err := Add(base, off)
	if err != nil {
		return TimePoint{}, err
	}
	out.clock = to
	return out, nil
}
