// Package error provides structured error handling for chronox.
//
// Package: error
// Title: chronox Error Handling
// Description: Structured errors with codes, severities, details and stack
//              traces. Every failure of the calendar and clock packages is an
//              *Error whose Code names one of the error kinds: a field value
//              out of range, an incompatible operand type, an unsupported
//              precision, an integer overflow or an invalid date that was not
//              resolved before conversion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Calendar error kinds and batch failure collection
//
// Usage:
//
//	import cxerror "github.com/msto63/chronox/foundation/core/error"
//
//	err := cxerror.OutOfRange("month", 13, 1, 12)
//	if cxerror.HasCode(err, cxerror.CodeValueOutOfRange) {
//		// reject the input
//	}
//
//	var f cxerror.Failures
//	for i, v := range values {
//		if err := check(v); err != nil {
//			f.Record(i, err)
//		}
//	}
//	return f.Err("check values")
package error
