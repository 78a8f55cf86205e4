// File: root.go
// Title: chronox Root Command
// Description: Root command, global flags, configuration and logger setup,
//              and the mapping of errors to exit statuses.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	cxerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/foundation/core/log"
	"github.com/msto63/chronox/internal/batch"
	"github.com/msto63/chronox/pkg/core/config"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfgFile  string
	logLevel string
	output   string
	encoding string

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand builds the command tree reading files from fs
func NewRootCommand(fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{fs: fs, stdin: stdin, stdout: stdout, stderr: stderr, logger: log.Discard()}

	root := &cobra.Command{
		Use:   "chronox",
		Short: "chronox - calendar arithmetic on the command line",
		Long: `chronox converts, validates and counts dates across calendars.

Calendars:
  year_month_day      (ymd)  2021-02-28
  year_month_weekday  (ymw)  2021-02-Sun[4]
  iso_year_week_day   (iso)  2021-W08-7
  year_quarter_day    (yqd)  2021-Q1-59
  year_week_day       (ywd)  2021-W09-1
  year_day            (yd)   2021-059

Dates are given as comma separated integers in field order, for example
2021,2,28 for a year_month_day at day precision. NA marks a missing value.
Weekday codes follow --weekday-encoding: western numbers Sunday 1,
iso numbers Monday 1.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $CHRONOX_CONFIG or ./chronox.toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json, yaml")
	root.PersistentFlags().StringVar(&a.encoding, "weekday-encoding", "", "weekday codes: western (1 = Sunday) or iso (1 = Monday)")

	root.AddCommand(
		newConvertCmd(a),
		newResolveCmd(a),
		newCountCmd(a),
		newShiftCmd(a),
		newGroupCmd(a),
		newBoundaryCmd(a),
		newInfoCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCommand(afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr)
	return run(ctx, root, os.Stderr)
}

func run(ctx context.Context, root *cobra.Command, stderr io.Writer) int {
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	code := cxerror.GetCode(err)
	if code != cxerror.CodeUnknown {
		fmt.Fprintf(stderr, "  code: %s (%s)\n", code, code.Category())
	}
	if positions, ok := detail(err, "positions"); ok {
		fmt.Fprintf(stderr, "  positions: %v\n", positions)
	}
	return code.ExitCode()
}

func detail(err error, key string) (interface{}, bool) {
	var cx *cxerror.Error
	if !errors.As(err, &cx) {
		return nil, false
	}
	return cx.Detail(key)
}

// setup loads .env, the configuration and the logger before any subcommand
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.loadDotEnv(".env"); err != nil {
		return err
	}

	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.fs, a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv(a.fs)
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("output") {
		a.cfg.Output.Format = a.output
	}
	if cmd.Flags().Changed("weekday-encoding") {
		a.cfg.Calendar.WeekdayEncoding = a.encoding
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, _ := a.cfg.LogLevel()
	format, _ := a.cfg.LogFormat()
	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: a.stderr,
		Name:   "chronox",
	}).WithCorrelationID(uuid.NewString())
	log.SetDefault(a.logger)

	log.Debug("configuration loaded", log.Fields{
		"command": cmd.Name(),
		"config":  a.cfgFile,
		"output":  a.cfg.Output.Format,
		"level":   a.logger.GetLevel().String(),
	})
	return nil
}

// loadDotEnv sets variables from a .env file that are not already set
func (a *app) loadDotEnv(path string) error {
	ok, err := afero.Exists(a.fs, path)
	if err != nil || !ok {
		return nil
	}
	f, err := a.fs.Open(path)
	if err != nil {
		return cxerror.Wrap(err, "failed to open "+path).WithCode(cxerror.CodeConfigError)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return cxerror.Wrap(err, "failed to parse "+path).WithCode(cxerror.CodeInvalidConfig)
	}
	for k, v := range vars {
		if _, set := os.LookupEnv(k); !set {
			os.Setenv(k, v)
		}
	}
	return nil
}

func (a *app) runner() *batch.Runner {
	return batch.NewRunner(batch.Config{
		Workers:   a.cfg.Batch.Workers,
		ChunkSize: a.cfg.Batch.ChunkSize,
	}, a.logger)
}
