package config

import (
	"bytes"
	"errors"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/msto63/chronox/foundation/clock/calendar"
	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/foundation/clock/weekday"
	cxerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/foundation/core/log"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvConfigPath,
		"CHRONOX_FISCAL_START", "CHRONOX_WEEK_START", "CHRONOX_INVALID", "CHRONOX_WEEKDAY_ENCODING",
		"CHRONOX_LOG_LEVEL", "CHRONOX_LOG_FORMAT", "CHRONOX_OUTPUT",
		"CHRONOX_BATCH_WORKERS", "CHRONOX_BATCH_CHUNK_SIZE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Calendar.FiscalStart != 1 {
		t.Errorf("Calendar.FiscalStart = %v, want 1", cfg.Calendar.FiscalStart)
	}
	if cfg.Calendar.WeekStart != "sunday" {
		t.Errorf("Calendar.WeekStart = %v, want sunday", cfg.Calendar.WeekStart)
	}
	if cfg.Calendar.Invalid != "error" {
		t.Errorf("Calendar.Invalid = %v, want error", cfg.Calendar.Invalid)
	}
	if cfg.Calendar.WeekdayEncoding != "western" {
		t.Errorf("Calendar.WeekdayEncoding = %v, want western", cfg.Calendar.WeekdayEncoding)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %v, want warn", cfg.Log.Level)
	}
	if cfg.Output.Format != OutputText {
		t.Errorf("Output.Format = %v, want text", cfg.Output.Format)
	}
	if cfg.Batch.Workers != runtime.GOMAXPROCS(0) {
		t.Errorf("Batch.Workers = %v, want %v", cfg.Batch.Workers, runtime.GOMAXPROCS(0))
	}
	if cfg.Batch.ChunkSize != 4096 {
		t.Errorf("Batch.ChunkSize = %v, want 4096", cfg.Batch.ChunkSize)
	}
}

func TestConfig_applyDefaults_PreservesValues(t *testing.T) {
	cfg := &Config{
		Calendar: CalendarConfig{FiscalStart: 4, WeekStart: "monday"},
		Batch:    BatchConfig{ChunkSize: 10},
	}
	cfg.applyDefaults()

	if cfg.Calendar.FiscalStart != 4 {
		t.Errorf("Calendar.FiscalStart = %v, want 4", cfg.Calendar.FiscalStart)
	}
	if cfg.Calendar.WeekStart != "monday" {
		t.Errorf("Calendar.WeekStart = %v, want monday", cfg.Calendar.WeekStart)
	}
	if cfg.Batch.ChunkSize != 10 {
		t.Errorf("Batch.ChunkSize = %v, want 10", cfg.Batch.ChunkSize)
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		path    string
		content string
	}{
		{
			name: "toml",
			path: "/etc/chronox.toml",
			content: `
[calendar]
fiscal_start = 4
week_start = "monday"
invalid = "previous-day"

[batch]
chunk_size = 128
`,
		},
		{
			name: "yaml",
			path: "/etc/chronox.yaml",
			content: `
calendar:
  fiscal_start: 4
  week_start: monday
  invalid: previous-day
batch:
  chunk_size: 128
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, tt.path, tt.content)

			cfg, err := Load(fs, tt.path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Calendar.FiscalStart != 4 {
				t.Errorf("FiscalStart = %d, want 4", cfg.Calendar.FiscalStart)
			}
			if ws, _ := cfg.WeekStart(); ws != weekday.Monday {
				t.Errorf("WeekStart() = %v, want Monday", ws)
			}
			if p, _ := cfg.Policy(); p != calendar.PolicyPreviousDay {
				t.Errorf("Policy() = %v, want previous-day", p)
			}
			if cfg.Batch.ChunkSize != 128 {
				t.Errorf("ChunkSize = %d, want 128", cfg.Batch.ChunkSize)
			}
			if cfg.Output.Format != OutputText {
				t.Errorf("Output.Format = %q, want default text", cfg.Output.Format)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		path    string
		content string
		code    cxerror.Code
	}{
		{"missing", "/nope.toml", "", cxerror.CodeMissingConfig},
		{"extension", "/chronox.ini", "x=1", cxerror.CodeInvalidConfig},
		{"syntax", "/chronox.toml", "[calendar\n", cxerror.CodeInvalidConfig},
		{"fiscal start", "/chronox.toml", "[calendar]\nfiscal_start = 13\n", cxerror.CodeInvalidConfig},
		{"week start", "/chronox.toml", "[calendar]\nweek_start = \"someday\"\n", cxerror.CodeInvalidConfig},
		{"policy", "/chronox.yaml", "calendar:\n  invalid: later\n", cxerror.CodeInvalidConfig},
		{"output", "/chronox.yaml", "output:\n  format: xml\n", cxerror.CodeInvalidConfig},
		{"workers", "/chronox.toml", "[batch]\nworkers = -2\n", cxerror.CodeInvalidConfig},
		{"encoding", "/chronox.toml", "[calendar]\nweekday_encoding = \"french\"\n", cxerror.CodeInvalidConfig},
		{"week start code", "/chronox.toml", "[calendar]\nweekday_encoding = \"iso\"\nweek_start = \"8\"\n", cxerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.content != "" {
				writeFile(t, fs, tt.path, tt.content)
			}
			_, err := Load(fs, tt.path)
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if !cxerror.HasCode(err, tt.code) {
				t.Errorf("Load() code = %v, want %v", cxerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestValidate_Details(t *testing.T) {
	cfg := Default()
	cfg.Calendar.WeekStart = "someday"

	err := cfg.Validate()
	var cx *cxerror.Error
	if !errors.As(err, &cx) {
		t.Fatalf("Validate() error = %v, want *cxerror.Error", err)
	}
	if key, _ := cx.Detail("key"); key != "calendar.week_start" {
		t.Errorf("detail key = %v, want calendar.week_start", key)
	}
	if value, _ := cx.Detail("value"); value != "someday" {
		t.Errorf("detail value = %v, want someday", value)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHRONOX_FISCAL_START", "10")
	t.Setenv("CHRONOX_LOG_LEVEL", "debug")
	t.Setenv("CHRONOX_OUTPUT", "json")

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/chronox.toml", "[calendar]\nfiscal_start = 4\n[log]\nlevel = \"error\"\n")

	cfg, err := Load(fs, "/chronox.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Calendar.FiscalStart != 10 {
		t.Errorf("FiscalStart = %d, want 10", cfg.Calendar.FiscalStart)
	}
	if lvl, _ := cfg.LogLevel(); lvl != log.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", lvl)
	}
	if cfg.Output.Format != OutputJSON {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		clearEnv(t)
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/cfg/custom.yml", "calendar:\n  fiscal_start: 7\n")
		t.Setenv(EnvConfigPath, "/cfg/custom.yml")

		cfg, err := LoadFromEnv(fs)
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Calendar.FiscalStart != 7 {
			t.Errorf("FiscalStart = %d, want 7", cfg.Calendar.FiscalStart)
		}
	})

	t.Run("default location", func(t *testing.T) {
		clearEnv(t)
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "./chronox.toml", "[calendar]\nweek_start = \"sat\"\n")

		cfg, err := LoadFromEnv(fs)
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if ws, _ := cfg.WeekStart(); ws != weekday.Saturday {
			t.Errorf("WeekStart() = %v, want Saturday", ws)
		}
	})

	t.Run("no file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CHRONOX_WEEKDAY_ENCODING", "iso")

		cfg, err := LoadFromEnv(afero.NewMemMapFs())
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if enc, _ := cfg.Encoding(); enc != weekday.ISO {
			t.Errorf("Encoding() = %v, want iso", enc)
		}
		if cfg.Calendar.FiscalStart != 1 {
			t.Errorf("FiscalStart = %d, want 1", cfg.Calendar.FiscalStart)
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfigPath, "/missing.toml")
		if _, err := LoadFromEnv(afero.NewMemMapFs()); !cxerror.HasCode(err, cxerror.CodeMissingConfig) {
			t.Errorf("LoadFromEnv() error = %v, want MISSING_CONFIG", err)
		}
	})
}

func TestConfig_CalendarOptions(t *testing.T) {
	cfg := Default()
	cfg.Calendar.FiscalStart = 2
	cfg.Calendar.WeekStart = "wednesday"

	opts, err := cfg.CalendarOptions()
	if err != nil {
		t.Fatalf("CalendarOptions() error = %v", err)
	}

	yqd, err := calendar.Of(calendar.YearQuarterDay, precision.Day, nil, opts...)
	if err != nil {
		t.Fatalf("calendar.Of() error = %v", err)
	}
	if yqd.FiscalStart() != 2 {
		t.Errorf("FiscalStart() = %d, want 2", yqd.FiscalStart())
	}

	ywd, err := calendar.Of(calendar.YearWeekDay, precision.Day, nil, opts...)
	if err != nil {
		t.Fatalf("calendar.Of() error = %v", err)
	}
	if ywd.WeekStart() != weekday.Wednesday {
		t.Errorf("WeekStart() = %v, want Wednesday", ywd.WeekStart())
	}
}

func TestConfig_WeekdayEncoding(t *testing.T) {
	tests := []struct {
		encoding  string
		weekStart string
		wantStart weekday.Weekday
		want      string
	}{
		{"western", "2", weekday.Monday, "2021-02-Sun[1]"},
		{"iso", "2", weekday.Tuesday, "2021-02-Mon[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			cfg := Default()
			cfg.Calendar.WeekdayEncoding = tt.encoding
			cfg.Calendar.WeekStart = tt.weekStart
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			start, err := cfg.WeekStart()
			if err != nil || start != tt.wantStart {
				t.Errorf("WeekStart() = %v, %v, want %v", start, err, tt.wantStart)
			}

			opts, err := cfg.CalendarOptions()
			if err != nil {
				t.Fatalf("CalendarOptions() error = %v", err)
			}
			ymw, err := calendar.Of(calendar.YearMonthWeekday, precision.Day,
				[]calendar.Fields{{Year: 2021, Month: 2, Day: 1, Index: 1}}, opts...)
			if err != nil {
				t.Fatalf("calendar.Of() error = %v", err)
			}
			if got := ymw.Strings()[0]; got != tt.want {
				t.Errorf("Strings() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_Write(t *testing.T) {
	cfg := Default()
	cfg.Calendar.FiscalStart = 10

	tests := []struct {
		format string
		want   string
	}{
		{"toml", "fiscal_start = 10"},
		{"yaml", "fiscal_start: 10"},
		{"json", `"fiscal_start": 10`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := cfg.Write(&buf, tt.format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Write() output missing %q:\n%s", tt.want, buf.String())
			}
		})
	}

	if err := cfg.Write(&bytes.Buffer{}, "xml"); err == nil {
		t.Error("Write(xml) error = nil")
	}
}
