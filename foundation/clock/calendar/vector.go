// File: vector.go
// Title: Calendar Vectors
// Description: A nullable vector of calendar values sharing one calendar
//              kind, one precision and one configuration value (fiscal start
//              month or week start). Every operation returns a new vector.
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
	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/foundation/clock/weekday"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Vector holds calendar values of one kind at one precision.
type Vector struct {
	rules
	precision precision.Precision
	data      nullable.Vector[Fields]
}

type options struct {
	fiscalStart int64
	weekStart   weekday.Weekday
	encoding    weekday.Encoding
}

// Option configures a calendar. Options that do not apply to the
// calendar kind are ignored.
type Option func(*options)

// WithFiscalStart sets the month (1-12) in which the fiscal year of a
// year_quarter_day calendar begins. The default is January.
func WithFiscalStart(month int64) Option {
	return func(o *options) { o.fiscalStart = month }
}

// WithWeekStart sets the first day of the week of a year_week_day
// calendar. The default is Sunday.
func WithWeekStart(wd weekday.Weekday) Option {
	return func(o *options) { o.weekStart = wd }
}

// WithWeekdayEncoding sets how the day codes of a year_month_weekday
// calendar number the weekdays. The default is weekday.Western.
func WithWeekdayEncoding(e weekday.Encoding) Option {
	return func(o *options) { o.encoding = e }
}

func newRules(kind Kind, opts []Option) (rules, error) {
	o := options{fiscalStart: 1, weekStart: weekday.Sunday, encoding: weekday.Western}
	for _, opt := range opts {
		opt(&o)
	}
	r := rules{kind: kind}
	switch kind {
	case YearQuarterDay:
		if err := civil.FiscalStartRange.Check("start", o.fiscalStart); err != nil {
			return r, err
		}
		r.start = o.fiscalStart
	case YearWeekDay:
		if o.weekStart < weekday.Sunday || o.weekStart > weekday.Saturday {
			return r, cxerror.OutOfRange("start", int64(o.weekStart), int64(weekday.Sunday), int64(weekday.Saturday))
		}
		r.start = int64(o.weekStart)
	case IsoYearWeekDay:
		r.start = int64(weekday.Monday)
	case YearMonthWeekday:
		if o.encoding != weekday.Western && o.encoding != weekday.ISO {
			return r, cxerror.New("unknown weekday encoding").WithCode(cxerror.CodeInvalidInput).
				WithDetail("encoding", int(o.encoding))
		}
		r.encoding = o.encoding
	}
	return r, nil
}

// New validates data and returns a calendar vector at precision p. Fields
// finer than p are cleared. Every field is range checked; the error for
// the first offending field names all positions where it is out of range.
func New(kind Kind, p precision.Precision, data nullable.Vector[Fields], opts ...Option) (Vector, error) {
	op := kind.Name()
	if err := kind.requireSupported(op, p); err != nil {
		return Vector{}, err
	}
	r, err := newRules(kind, opts)
	if err != nil {
		return Vector{}, cxerror.Wrap(err, "invalid calendar configuration").WithOperation(op)
	}
	for _, f := range kind.Fields(p) {
		rng := r.rangeOf(f)
		var failures cxerror.Failures
		for i := 0; i < data.Len(); i++ {
			if x, ok := data.At(i); ok {
				failures.Record(i, rng.Check(f.String(), x.Get(f)))
			}
		}
		if err := failures.Err(op); err != nil {
			return Vector{}, err
		}
	}
	clean, _ := nullable.Map(data, op, func(x Fields) (Fields, error) {
		return x.truncate(kind, p), nil
	})
	return Vector{rules: r, precision: p, data: clean}, nil
}

// Of is New for values without nulls.
func Of(kind Kind, p precision.Precision, values []Fields, opts ...Option) (Vector, error) {
	return New(kind, p, nullable.Of(values...), opts...)
}

// Builder accumulates calendar values before validation.
type Builder struct {
	kind Kind
	p    precision.Precision
	opts []Option
	b    *nullable.Builder[Fields]
}

// NewBuilder returns a Builder for a vector of kind at precision p.
func NewBuilder(kind Kind, p precision.Precision, opts ...Option) *Builder {
	return &Builder{kind: kind, p: p, opts: opts, b: nullable.NewBuilder[Fields](0)}
}

// Append adds a value.
func (b *Builder) Append(x Fields) *Builder {
	b.b.Append(x)
	return b
}

// AppendNull adds a null element.
func (b *Builder) AppendNull() *Builder {
	b.b.AppendNull()
	return b
}

// Build validates the accumulated values. The builder is reset.
func (b *Builder) Build() (Vector, error) {
	return New(b.kind, b.p, b.b.Build(), b.opts...)
}

// Kind returns the calendar kind.
func (v Vector) Kind() Kind { return v.kind }

// Precision returns the precision of every element.
func (v Vector) Precision() precision.Precision { return v.precision }

// FiscalStart returns the fiscal start month of a year_quarter_day vector
// and 0 for other calendars.
func (v Vector) FiscalStart() int64 {
	if v.kind == YearQuarterDay {
		return v.start
	}
	return 0
}

// WeekStart returns the first day of the week of week calendars.
func (v Vector) WeekStart() weekday.Weekday { return v.weekStart() }

// WeekdayEncoding returns the numbering of year_month_weekday day codes.
func (v Vector) WeekdayEncoding() weekday.Encoding { return v.encoding }

// Options returns the configuration of v as options, for building vectors
// of the same kind and configuration.
func (v Vector) Options() []Option {
	return []Option{
		WithFiscalStart(v.FiscalStart()),
		WithWeekStart(v.WeekStart()),
		WithWeekdayEncoding(v.encoding),
	}
}

// Len returns the number of elements.
func (v Vector) Len() int { return v.data.Len() }

// At returns element i and false when it is null.
func (v Vector) At(i int) (Fields, bool) { return v.data.At(i) }

// Data returns the underlying nullable values.
func (v Vector) Data() nullable.Vector[Fields] { return v.data }

// Slice returns elements [from, to).
func (v Vector) Slice(from, to int) Vector {
	v.data = v.data.Slice(from, to)
	return v
}

// Concat joins vectors of the same calendar, configuration and precision.
func Concat(parts ...Vector) (Vector, error) {
	if len(parts) == 0 {
		return Vector{}, cxerror.New("nothing to concatenate").WithCode(cxerror.CodeInvalidInput)
	}
	data := make([]nullable.Vector[Fields], len(parts))
	for i, p := range parts {
		if err := parts[0].compatible("concat", p); err != nil {
			return Vector{}, err
		}
		data[i] = p.data
	}
	out := parts[0]
	out.data = nullable.Concat(data...)
	return out, nil
}

func (v Vector) with(data nullable.Vector[Fields], p precision.Precision) Vector {
	v.data, v.precision = data, p
	return v
}

// compatible checks that w can be combined with v elementwise.
func (v Vector) compatible(op string, w Vector) error {
	switch {
	case v.kind != w.kind:
		return cxerror.Incompatible("cannot combine %s with %s", v.kind.Name(), w.kind.Name()).WithOperation(op)
	case v.start != w.start:
		return cxerror.Incompatible("%s values have different start configurations (%d and %d)", v.kind.Name(), v.start, w.start).
			WithOperation(op)
	case v.encoding != w.encoding:
		return cxerror.Incompatible("%s values use different weekday encodings (%s and %s)", v.kind.Name(), v.encoding, w.encoding).
			WithOperation(op)
	case v.precision != w.precision:
		return cxerror.Incompatible("%s values have different precisions (%s and %s)", v.kind.Name(), v.precision, w.precision).
			WithOperation(op)
	}
	return nil
}
