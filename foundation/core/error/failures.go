// File: failures.go
// Title: Element Failure Collection
// Description: Collects per-element failures of a vectorised operation and
//              folds them into one error that names the failure count, the
//              first failing position and every failing position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

import (
	"fmt"
	"sort"
)

type failure struct {
	pos int
	err error
}

// Failures accumulates element failures. The zero value is ready to use.
type Failures struct {
	items []failure
}

// Record notes that the element at position pos failed with err.
// A nil err is ignored.
func (f *Failures) Record(pos int, err error) {
	if err == nil {
		return
	}
	f.items = append(f.items, failure{pos: pos, err: err})
}

// Count returns the number of recorded failures.
func (f *Failures) Count() int {
	return len(f.items)
}

// Positions returns the failing positions in ascending order.
func (f *Failures) Positions() []int {
	out := make([]int, len(f.items))
	for i, it := range f.items {
		out[i] = it.pos
	}
	sort.Ints(out)
	return out
}

// Err returns nil when nothing failed. Otherwise it wraps the error of the
// lowest failing position, keeping its code, and adds the positions.
func (f *Failures) Err(op string) error {
	if len(f.items) == 0 {
		return nil
	}
	sort.SliceStable(f.items, func(i, j int) bool { return f.items[i].pos < f.items[j].pos })
	first := f.items[0]

	var msg string
	if f.Count() == 1 {
		msg = fmt.Sprintf("failure at position %d", first.pos)
	} else {
		msg = fmt.Sprintf("%d failures, first at position %d", f.Count(), first.pos)
	}

	e := Wrap(first.err, msg)
	e.stackTrace = captureStackTrace(2)
	if GetCode(first.err) == CodeUnknown {
		e.WithCode(CodeInvalidInput)
	}
	return e.WithOperation(op).
		WithDetail("positions", f.Positions()).
		WithDetail("count", f.Count()).
		WithDetail("first", first.pos)
}
