// File: logger_test.go
// Title: Logger Tests
// Description: Tests for leveled output, context fields and error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Rewritten for the synchronous logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

func newBufferLogger(format Format, level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		logFunc func(*Logger)
		want    bool
	}{
		{"debug filtered at info", LevelInfo, func(l *Logger) { l.Debug("x") }, false},
		{"info passes at info", LevelInfo, func(l *Logger) { l.Info("x") }, true},
		{"warn passes at info", LevelInfo, func(l *Logger) { l.Warn("x") }, true},
		{"trace passes at trace", LevelTrace, func(l *Logger) { l.Trace("x") }, true},
		{"error filtered above error", LevelFatal, func(l *Logger) { l.Error("x") }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferLogger(FormatText, tt.level)
			tt.logFunc(l)
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoggerJSONContext(t *testing.T) {
	l, buf := newBufferLogger(FormatJSON, LevelDebug)
	l = l.WithName("batch").WithCorrelationID("cid-1").WithField("kind", "year_month_day")

	l.Info("chunk done", Int("rows", 42))

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	checks := map[string]interface{}{
		"level":          "info",
		"message":        "chunk done",
		"logger":         "batch",
		"correlation_id": "cid-1",
		"kind":           "year_month_day",
		"rows":           float64(42),
	}
	for k, want := range checks {
		if got[k] != want {
			t.Errorf("%s = %v, want %v", k, got[k], want)
		}
	}
}

func TestLoggerWithIsImmutable(t *testing.T) {
	base, buf := newBufferLogger(FormatText, LevelInfo)
	_ = base.WithField("extra", 1).WithLevel(LevelError)

	base.Info("hello")
	if strings.Contains(buf.String(), "extra") {
		t.Error("WithField must not modify the receiver")
	}
	if buf.Len() == 0 {
		t.Error("WithLevel must not modify the receiver")
	}
}

func TestLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"low severity logs info", cxerror.OutOfRange("day", 32, 1, 31), "[INF]"},
		{"high severity logs error", cxerror.Overflow("cast"), "[ERR]"},
		{"medium severity logs warn", cxerror.New("odd"), "[WRN]"},
		{"plain error logs error", errors.New("plain"), "[ERR]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferLogger(FormatText, LevelTrace)
			l.LogError(tt.err)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.want)
			}
		})
	}

	l, buf := newBufferLogger(FormatText, LevelTrace)
	l.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not log")
	}
}

func TestLogErrorFields(t *testing.T) {
	l, buf := newBufferLogger(FormatLogfmt, LevelTrace)
	l.LogError(cxerror.OutOfRange("month", 13, 1, 12))

	out := buf.String()
	for _, want := range []string{`error_code="VALUE_OUT_OF_RANGE"`, `error_field="month"`, "error_max=12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.IsLevelEnabled(LevelFatal) {
		t.Error("Discard logger should not enable any level")
	}
	l.Error("dropped")
}

func TestDefaultLogger(t *testing.T) {
	previous := GetDefault()
	defer SetDefault(previous)

	logger, buf := newBufferLogger(FormatLogfmt, LevelInfo)
	SetDefault(logger)

	Debug("hidden")
	Info("shown", Fields{"calendar": "year_day"})
	Warn("careful")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "careful") {
		t.Errorf("default logger output = %q", out)
	}
}
