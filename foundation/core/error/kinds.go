// File: kinds.go
// Title: Calendar Error Kinds
// Description: Constructors for the error kinds raised by the clock and
//              calendar packages. Each constructor fixes the code and fills
//              the details that identify the failing value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

import "fmt"

// OutOfRange reports a field value outside its permitted range.
func OutOfRange(field string, value, min, max int64) *Error {
	e := New(fmt.Sprintf("`%s` must be within the range of [%d, %d], not %d", field, min, max, value))
	e.stackTrace = captureStackTrace(2)
	return e.WithCode(CodeValueOutOfRange).
		WithDetail("field", field).
		WithDetail("value", value).
		WithDetail("min", min).
		WithDetail("max", max)
}

// Incompatible reports operands of different kinds, clocks or precisions.
func Incompatible(format string, args ...interface{}) *Error {
	e := New(fmt.Sprintf(format, args...))
	e.stackTrace = captureStackTrace(2)
	return e.WithCode(CodeIncompatibleType)
}

// Precision reports a precision that the operation does not support.
func Precision(format string, args ...interface{}) *Error {
	e := New(fmt.Sprintf(format, args...))
	e.stackTrace = captureStackTrace(2)
	return e.WithCode(CodePrecision)
}

// Overflow reports an integer overflow in op.
func Overflow(op string) *Error {
	e := New(fmt.Sprintf("integer overflow in %s", op))
	e.stackTrace = captureStackTrace(2)
	return e.WithCode(CodeOverflow).WithOperation(op)
}

// UnresolvedInvalid reports invalid dates found where valid ones are required.
func UnresolvedInvalid(op string, positions []int) *Error {
	msg := fmt.Sprintf("conversion from a calendar requires that all dates are valid; %d invalid date(s) found", len(positions))
	if len(positions) > 0 {
		msg += fmt.Sprintf(", first at position %d", positions[0])
	}
	e := New(msg + ". Resolve invalid dates first.")
	e.stackTrace = captureStackTrace(2)
	return e.WithCode(CodeUnresolvedInvalid).
		WithOperation(op).
		WithDetail("positions", positions).
		WithDetail("count", len(positions))
}
