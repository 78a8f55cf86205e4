// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and the
//              calendar error kinds.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Calendar error kinds

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap chronox error keeps code",
			err:      New("month out of range").WithCode(CodeValueOutOfRange),
			message:  "build calendar",
			wantMsg:  "build calendar: month out of range",
			wantCode: CodeValueOutOfRange,
		},
		{
			name:     "wrap fmt-wrapped chronox error keeps code",
			err:      fmt.Errorf("ctx: %w", Overflow("cast")),
			message:  "convert",
			wantMsg:  "convert: ctx: integer overflow in cast",
			wantCode: CodeOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapChainTruncation(t *testing.T) {
	var err error = New("root").WithCode(CodePrecision)
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}
	cx := err.(*Error)
	if _, ok := cx.Detail("truncated"); !ok {
		t.Error("deep chains should be truncated")
	}
	if cx.Code() != CodePrecision {
		t.Errorf("Code() = %v, want %v", cx.Code(), CodePrecision)
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := Precision("target precision %s is finer than %s", "second", "day")
	outer := Wrap(inner, "floor").WithCode(CodeInvalidInput)

	if !HasCode(outer, CodePrecision) {
		t.Error("HasCode should find the inner code")
	}
	if !HasCode(outer, CodeInvalidInput) {
		t.Error("HasCode should find the outer code")
	}
	if HasCode(errors.New("plain"), CodePrecision) {
		t.Error("HasCode on a plain error should be false")
	}
	if got := GetCode(outer); got != CodeInvalidInput {
		t.Errorf("GetCode() = %v, want %v", got, CodeInvalidInput)
	}
	if got := GetCode(nil); got != CodeUnknown {
		t.Errorf("GetCode(nil) = %v, want %v", got, CodeUnknown)
	}
}

func TestErrorsIsByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", Overflow("add"))
	if !errors.Is(err, New("").WithCode(CodeOverflow)) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(err, New("").WithCode(CodePrecision)) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestOutOfRange(t *testing.T) {
	err := OutOfRange("month", 13, 1, 12)

	want := "`month` must be within the range of [1, 12], not 13"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Code() != CodeValueOutOfRange {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeValueOutOfRange)
	}
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}
	if v, _ := err.Detail("field"); v != "month" {
		t.Errorf("field detail = %v, want month", v)
	}
}

func TestUnresolvedInvalid(t *testing.T) {
	err := UnresolvedInvalid("as_sys", []int{2, 5})
	if err.Code() != CodeUnresolvedInvalid {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnresolvedInvalid)
	}
	if !strings.Contains(err.Error(), "first at position 2") {
		t.Errorf("message should name the first position: %q", err.Error())
	}
	if v, _ := err.Detail("count"); v != 2 {
		t.Errorf("count detail = %v, want 2", v)
	}
}

func TestCodeExitCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeValueOutOfRange, 3},
		{CodeIncompatibleType, 4},
		{CodePrecision, 4},
		{CodeOverflow, 5},
		{CodeUnresolvedInvalid, 6},
		{CodeInvalidConfig, 78},
		{CodeUnknown, 1},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
			if !tt.code.IsValid() {
				t.Errorf("%v should be valid", tt.code)
			}
		})
	}
	if Code("BOGUS").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInternal, SeverityCritical},
		{CodeOverflow, SeverityHigh},
		{CodePrecision, SeverityLow},
		{CodeCanceled, SeverityMedium},
	}
	for _, tt := range tests {
		if got := GetSeverityFromCode(tt.code); got != tt.want {
			t.Errorf("GetSeverityFromCode(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("io"), "load").
		WithCode(CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", "chronox.toml")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("Marshal() error = %v", mErr)
	}
	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("Unmarshal() error = %v", uErr)
	}
	if decoded["code"] != "CONFIG_ERROR" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "config.Load" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "io" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestString(t *testing.T) {
	s := New("bad").WithCode(CodePrecision).WithDetail("b", 2).WithDetail("a", 1).String()
	if !strings.Contains(s, "Details: {a=1, b=2}") {
		t.Errorf("String() should list sorted details, got %q", s)
	}
}
