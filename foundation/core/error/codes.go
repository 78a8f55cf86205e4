// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across chronox. Each calendar and
//              clock failure kind has its own code so callers and the CLI can
//              classify failures without matching on message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Calendar and clock error kinds, exit codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Calendar and clock
	CodeValueOutOfRange   Code = "VALUE_OUT_OF_RANGE"
	CodeIncompatibleType  Code = "INCOMPATIBLE_TYPE"
	CodePrecision         Code = "PRECISION"
	CodeOverflow          Code = "OVERFLOW"
	CodeUnresolvedInvalid Code = "UNRESOLVED_INVALID"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCanceled,
		CodeValueOutOfRange, CodeIncompatibleType, CodePrecision, CodeOverflow, CodeUnresolvedInvalid,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeValueOutOfRange, CodeIncompatibleType, CodePrecision, CodeOverflow, CodeUnresolvedInvalid:
		return "calendar"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeValidationFailed:
		return 2
	case CodeValueOutOfRange:
		return 3
	case CodeIncompatibleType, CodePrecision:
		return 4
	case CodeOverflow:
		return 5
	case CodeUnresolvedInvalid:
		return 6
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 78
	case CodeCanceled:
		return 130
	default:
		return 1
	}
}
