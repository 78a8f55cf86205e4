// ===============================================================================
// chronox - Configuration
// ===============================================================================
//
// Package: config
// Description: Typed configuration of the chronox command line tool. Values
//              come from a TOML or YAML file, then CHRONOX_* environment
//              variables override them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
//
// ===============================================================================

package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/msto63/chronox/foundation/clock/calendar"
	"github.com/msto63/chronox/foundation/clock/weekday"
	cxerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/foundation/core/log"
)

// EnvConfigPath names the variable that points at the configuration file
const EnvConfigPath = "CHRONOX_CONFIG"

// Config holds the complete chronox configuration
type Config struct {
	Calendar CalendarConfig `toml:"calendar" yaml:"calendar" json:"calendar"`
	Log      LogConfig      `toml:"log" yaml:"log" json:"log"`
	Output   OutputConfig   `toml:"output" yaml:"output" json:"output"`
	Batch    BatchConfig    `toml:"batch" yaml:"batch" json:"batch"`
}

// CalendarConfig holds the defaults applied when building calendar vectors
type CalendarConfig struct {
	FiscalStart     int    `toml:"fiscal_start" yaml:"fiscal_start" json:"fiscal_start" env:"CHRONOX_FISCAL_START"`
	WeekStart       string `toml:"week_start" yaml:"week_start" json:"week_start" env:"CHRONOX_WEEK_START"`
	Invalid         string `toml:"invalid" yaml:"invalid" json:"invalid" env:"CHRONOX_INVALID"`
	WeekdayEncoding string `toml:"weekday_encoding" yaml:"weekday_encoding" json:"weekday_encoding" env:"CHRONOX_WEEKDAY_ENCODING"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" json:"level" env:"CHRONOX_LOG_LEVEL"`
	Format string `toml:"format" yaml:"format" json:"format" env:"CHRONOX_LOG_FORMAT"`
}

// OutputConfig selects how results are printed
type OutputConfig struct {
	Format string `toml:"format" yaml:"format" json:"format" env:"CHRONOX_OUTPUT"`
}

// BatchConfig holds the parallel evaluation settings
type BatchConfig struct {
	Workers   int `toml:"workers" yaml:"workers" json:"workers" env:"CHRONOX_BATCH_WORKERS"`
	ChunkSize int `toml:"chunk_size" yaml:"chunk_size" json:"chunk_size" env:"CHRONOX_BATCH_CHUNK_SIZE"`
}

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration file at path from fs. The decoder is chosen
// by extension: .toml, .yaml or .yml. Environment overrides are applied
// after the file and the result is validated.
func Load(fs afero.Fs, path string) (*Config, error) {
	path = os.ExpandEnv(path)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, cxerror.Wrap(err, "failed to stat config file").WithCode(cxerror.CodeConfigError)
	}
	if !exists {
		return nil, cxerror.New("config file not found: " + path).
			WithCode(cxerror.CodeMissingConfig).
			WithDetail("path", path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, cxerror.Wrap(err, "failed to read config file").
			WithCode(cxerror.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	if err := decode(path, data, &cfg); err != nil {
		return nil, err
	}

	return finish(&cfg)
}

// LoadFromEnv loads the file named by CHRONOX_CONFIG or the first file found
// in the default locations. Without any file the defaults are used, still
// subject to environment overrides.
func LoadFromEnv(fs afero.Fs) (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(fs, path)
	}

	for _, p := range DefaultPaths() {
		if ok, _ := afero.Exists(fs, p); ok {
			return Load(fs, p)
		}
	}

	return finish(&Config{})
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{"./chronox.toml", "./chronox.yaml", "./chronox.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "chronox", "config.toml"),
			filepath.Join(home, ".config", "chronox", "config.yaml"))
	}
	return paths
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return cxerror.New("unsupported config file extension: " + ext).
			WithCode(cxerror.CodeInvalidConfig).
			WithDetail("path", path)
	}
	if err != nil {
		return cxerror.Wrap(err, "failed to parse config").
			WithCode(cxerror.CodeInvalidConfig).
			WithDetail("path", path)
	}
	return nil
}

func finish(cfg *Config) (*Config, error) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, cxerror.Wrap(err, "failed to read environment overrides").
			WithCode(cxerror.CodeInvalidConfig)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Calendar
	if c.Calendar.FiscalStart == 0 {
		c.Calendar.FiscalStart = 1
	}
	if c.Calendar.WeekStart == "" {
		c.Calendar.WeekStart = "sunday"
	}
	if c.Calendar.Invalid == "" {
		c.Calendar.Invalid = "error"
	}
	if c.Calendar.WeekdayEncoding == "" {
		c.Calendar.WeekdayEncoding = "western"
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = OutputText
	}

	// Batch
	if c.Batch.Workers == 0 {
		c.Batch.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Batch.ChunkSize == 0 {
		c.Batch.ChunkSize = 4096
	}
}

// Validate checks every value and reports the first offending key
func (c *Config) Validate() error {
	if c.Calendar.FiscalStart < 1 || c.Calendar.FiscalStart > 12 {
		return invalid("calendar.fiscal_start", c.Calendar.FiscalStart, nil)
	}
	if _, err := c.Encoding(); err != nil {
		return invalid("calendar.weekday_encoding", c.Calendar.WeekdayEncoding, err)
	}
	if _, err := c.WeekStart(); err != nil {
		return invalid("calendar.week_start", c.Calendar.WeekStart, err)
	}
	if _, err := c.Policy(); err != nil {
		return invalid("calendar.invalid", c.Calendar.Invalid, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return invalid("log.level", c.Log.Level, err)
	}
	if _, err := c.LogFormat(); err != nil {
		return invalid("log.format", c.Log.Format, err)
	}
	switch c.Output.Format {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return invalid("output.format", c.Output.Format, nil)
	}
	if c.Batch.Workers < 1 {
		return invalid("batch.workers", c.Batch.Workers, nil)
	}
	if c.Batch.ChunkSize < 1 {
		return invalid("batch.chunk_size", c.Batch.ChunkSize, nil)
	}
	return nil
}

func invalid(key string, value interface{}, cause error) error {
	var e *cxerror.Error
	if cause != nil {
		e = cxerror.Wrap(cause, "invalid configuration value for "+key)
	} else {
		e = cxerror.Newf("invalid configuration value for %s: %v", key, value)
	}
	return e.WithCode(cxerror.CodeInvalidConfig).
		WithDetails(map[string]interface{}{"key": key, "value": value})
}

// WeekStart returns the configured first day of the week. Numeric values
// are weekday codes under the configured encoding.
func (c *Config) WeekStart() (weekday.Weekday, error) {
	enc, err := c.Encoding()
	if err != nil {
		return 0, err
	}
	return weekday.ParseIn(c.Calendar.WeekStart, enc)
}

// Policy returns the configured invalid date policy
func (c *Config) Policy() (calendar.Policy, error) {
	return calendar.ParsePolicy(c.Calendar.Invalid)
}

// Encoding returns the configured weekday numbering
func (c *Config) Encoding() (weekday.Encoding, error) {
	return weekday.ParseEncoding(c.Calendar.WeekdayEncoding)
}

// LogLevel returns the configured minimum log level
func (c *Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// LogFormat returns the configured log line format
func (c *Config) LogFormat() (log.Format, error) {
	return log.ParseFormat(c.Log.Format)
}

// CalendarOptions returns the vector options carrying the fiscal start and
// week start. Options a calendar kind does not use are ignored by it.
func (c *Config) CalendarOptions() ([]calendar.Option, error) {
	start, err := c.WeekStart()
	if err != nil {
		return nil, err
	}
	enc, err := c.Encoding()
	if err != nil {
		return nil, err
	}
	return []calendar.Option{
		calendar.WithFiscalStart(int64(c.Calendar.FiscalStart)),
		calendar.WithWeekStart(start),
		calendar.WithWeekdayEncoding(enc),
	}, nil
}

// Write encodes the configuration in the given format: toml, yaml or json
func (c *Config) Write(w io.Writer, format string) error {
	var err error
	switch format {
	case "toml":
		err = toml.NewEncoder(w).Encode(c)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(c); err == nil {
			err = enc.Close()
		}
	case OutputJSON, OutputText:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(c)
	default:
		return cxerror.New("unsupported config encoding: " + format).WithCode(cxerror.CodeInvalidInput)
	}
	if err != nil {
		return cxerror.Wrap(err, "failed to encode config").WithCode(cxerror.CodeInternal)
	}
	return nil
}
