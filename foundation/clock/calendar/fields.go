// File: fields.go
// Title: Calendar Fields
// Description: The field tuple of one calendar value and the Field
//              enumeration used to address single components.
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
)

// Fields is one calendar value. Only the fields of the owning vector's
// calendar up to its precision are meaningful; the rest are zero.
//
// Day means day of month (year_month_day), weekday code under the vector's
// weekday encoding (year_month_weekday, 1 = Sunday by default), day of week
// relative to the week start (week calendars), day of quarter
// (year_quarter_day) or day of year (year_day).
// Subsecond counts units of the vector's subsecond precision.
type Fields struct {
	Year      int64 `json:"year" yaml:"year"`
	Quarter   int64 `json:"quarter,omitempty" yaml:"quarter,omitempty"`
	Month     int64 `json:"month,omitempty" yaml:"month,omitempty"`
	Week      int64 `json:"week,omitempty" yaml:"week,omitempty"`
	Day       int64 `json:"day,omitempty" yaml:"day,omitempty"`
	Index     int64 `json:"index,omitempty" yaml:"index,omitempty"`
	Hour      int64 `json:"hour,omitempty" yaml:"hour,omitempty"`
	Minute    int64 `json:"minute,omitempty" yaml:"minute,omitempty"`
	Second    int64 `json:"second,omitempty" yaml:"second,omitempty"`
	Subsecond int64 `json:"subsecond,omitempty" yaml:"subsecond,omitempty"`
}

// Field names one component of Fields.
type Field uint8

const (
	Year Field = iota
	Quarter
	Month
	Week
	Day
	Index
	Hour
	Minute
	Second
	Millisecond
	Microsecond
	Nanosecond
)

var fieldNames = [...]string{
	"year", "quarter", "month", "week", "day", "index",
	"hour", "minute", "second", "millisecond", "microsecond", "nanosecond",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// Precision returns the precision at which the field first appears.
func (f Field) Precision() precision.Precision {
	switch f {
	case Year:
		return precision.Year
	case Quarter:
		return precision.Quarter
	case Month:
		return precision.Month
	case Week:
		return precision.Week
	case Day, Index:
		return precision.Day
	case Hour:
		return precision.Hour
	case Minute:
		return precision.Minute
	case Second:
		return precision.Second
	case Millisecond:
		return precision.Millisecond
	case Microsecond:
		return precision.Microsecond
	}
	return precision.Nanosecond
}

// Get returns the value of field.
func (x Fields) Get(field Field) int64 {
	return *x.ref(field)
}

// With returns a copy of x with field set to value. No range check is made;
// New validates when the value is placed in a vector.
func (x Fields) With(field Field, value int64) Fields {
	*x.ref(field) = value
	return x
}

func (x *Fields) ref(field Field) *int64 {
	switch field {
	case Year:
		return &x.Year
	case Quarter:
		return &x.Quarter
	case Month:
		return &x.Month
	case Week:
		return &x.Week
	case Day:
		return &x.Day
	case Index:
		return &x.Index
	case Hour:
		return &x.Hour
	case Minute:
		return &x.Minute
	case Second:
		return &x.Second
	}
	return &x.Subsecond
}

func (x Fields) timeOfDay() civil.TimeOfDay {
	return civil.TimeOfDay{Hour: x.Hour, Minute: x.Minute, Second: x.Second, Subsecond: x.Subsecond}
}

func (x *Fields) setTimeOfDay(tod civil.TimeOfDay) {
	x.Hour, x.Minute, x.Second, x.Subsecond = tod.Hour, tod.Minute, tod.Second, tod.Subsecond
}

// truncate clears every field finer than p.
func (x Fields) truncate(k Kind, p precision.Precision) Fields {
	var out Fields
	for _, f := range k.Fields(p) {
		*out.ref(f) = x.Get(f)
	}
	return out
}
