// File: format_test.go
// Title: Formatter Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Deterministic field order

package log

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

func fixedEntry() *Entry {
	e := NewEntry(LevelWarn, "resolved invalid dates")
	e.Timestamp = time.Date(2021, 3, 1, 12, 30, 0, 0, time.UTC)
	e.Fields = Fields{"policy": "next", "count": 2}
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{" TEXT ", FormatText, false},
		{"", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if err != nil && !cxerror.HasCode(err, cxerror.CodeInvalidFormat) {
				t.Errorf("error code = %v", cxerror.GetCode(err))
			}
		})
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(fixedEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := "12:30:00 [WRN] resolved invalid dates [count=2 policy=next]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(fixedEntry())
	if !strings.HasPrefix(string(out), LevelWarn.Color()) || !strings.HasSuffix(string(out), "\033[0m\n") {
		t.Errorf("colored output expected, got %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(fixedEntry())
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors should be disabled, got %q", out)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	out, _ := NewLogfmtFormatter().Format(fixedEntry())
	want := `timestamp=2021-03-01T12:30:00Z level=warn message="resolved invalid dates" count=2 policy="next"` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestJSONFormatterError(t *testing.T) {
	e := fixedEntry()
	e.Error = cxerror.Precision("unsupported precision")
	e.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	if got["error"] != "unsupported precision" {
		t.Errorf("error = %v", got["error"])
	}
	details, ok := got["error_details"].(map[string]interface{})
	if !ok || details["code"] != "PRECISION" {
		t.Errorf("error_details = %v", got["error_details"])
	}
	if got["duration_ms"] != 1.5 {
		t.Errorf("duration_ms = %v", got["duration_ms"])
	}
}

func TestParseLevel(t *testing.T) {
	for _, lvl := range AllLevels() {
		got, err := ParseLevel(lvl.String())
		if err != nil || got != lvl {
			t.Errorf("ParseLevel(%q) = %v, %v", lvl.String(), got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel should reject unknown levels")
	}
}
