// File: input.go
// Title: Date Input
// Description: Shared calendar flags and parsing of comma separated field
//              records from arguments, files or standard input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/chronox/foundation/clock/calendar"
	"github.com/msto63/chronox/foundation/clock/nullable"
	"github.com/msto63/chronox/foundation/clock/precision"
	"github.com/msto63/chronox/foundation/clock/weekday"
	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// calendarFlags are the flags every command that reads dates shares
type calendarFlags struct {
	calendar    string
	precision   string
	input       string
	fiscalStart int
	weekStart   string
}

func (f *calendarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.calendar, "calendar", "c", "ymd", "calendar of the input dates")
	cmd.Flags().StringVarP(&f.precision, "precision", "p", "day", "precision of the input dates")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "file with one date per line, - for stdin")
	cmd.Flags().IntVar(&f.fiscalStart, "fiscal-start", 0, "first month of the fiscal year (default from config)")
	cmd.Flags().StringVar(&f.weekStart, "week-start", "", "first day of the week, name or code (default from config)")
}

// settings resolves the flags against the configuration
func (f *calendarFlags) settings(a *app) (calendar.Kind, precision.Precision, []calendar.Option, error) {
	kind, err := calendar.ParseKind(f.calendar)
	if err != nil {
		return 0, 0, nil, err
	}
	p, err := precision.Parse(f.precision)
	if err != nil {
		return 0, 0, nil, err
	}
	opts, err := a.options(f.fiscalStart, f.weekStart)
	if err != nil {
		return 0, 0, nil, err
	}
	return kind, p, opts, nil
}

// options merges command flags over the configured calendar defaults
func (a *app) options(fiscalStart int, weekStart string) ([]calendar.Option, error) {
	opts, err := a.cfg.CalendarOptions()
	if err != nil {
		return nil, err
	}
	if fiscalStart != 0 {
		opts = append(opts, calendar.WithFiscalStart(int64(fiscalStart)))
	}
	if weekStart != "" {
		wd, err := a.parseWeekday(weekStart)
		if err != nil {
			return nil, err
		}
		opts = append(opts, calendar.WithWeekStart(wd))
	}
	return opts, nil
}

// parseWeekday parses a weekday name or a code under the configured encoding
func (a *app) parseWeekday(s string) (weekday.Weekday, error) {
	enc, err := a.cfg.Encoding()
	if err != nil {
		return 0, err
	}
	return weekday.ParseIn(s, enc)
}

// records collects the raw date texts from args and the --input source
func (a *app) records(args []string, input string) ([]string, error) {
	out := append([]string(nil), args...)
	if input == "" {
		return out, nil
	}

	var r io.Reader
	if input == "-" {
		r = a.stdin
	} else {
		f, err := a.fs.Open(input)
		if err != nil {
			return nil, cxerror.Wrap(err, "failed to open input").
				WithCode(cxerror.CodeNotFound).
				WithDetail("path", input)
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, cxerror.Wrap(err, "failed to read input").WithCode(cxerror.CodeInvalidInput)
	}
	return out, nil
}

// parseRecords turns date texts into field rows for kind at precision p.
// Every malformed record is reported by position.
func parseRecords(kind calendar.Kind, p precision.Precision, texts []string) (nullable.Vector[calendar.Fields], error) {
	if !kind.Supports(p) {
		return nullable.Vector[calendar.Fields]{}, cxerror.Precision("%s does not support %s precision", kind, p)
	}
	fields := kind.Fields(p)

	b := nullable.NewBuilder[calendar.Fields](len(texts))
	var failures cxerror.Failures
	for i, text := range texts {
		x, ok, err := parseRecord(fields, text)
		if err != nil {
			failures.Record(i, err)
		}
		b.AppendOptional(x, ok && err == nil)
	}
	if err := failures.Err("parse dates"); err != nil {
		return nullable.Vector[calendar.Fields]{}, err
	}
	return b.Build(), nil
}

func parseRecord(fields []calendar.Field, text string) (calendar.Fields, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, calendar.NA) {
		return calendar.Fields{}, false, nil
	}

	parts := strings.Split(text, ",")
	if len(parts) != len(fields) {
		return calendar.Fields{}, false, cxerror.Newf("date %q has %d fields, want %d (%s)",
			text, len(parts), len(fields), fieldList(fields)).
			WithCode(cxerror.CodeInvalidInput)
	}

	var x calendar.Fields
	for i, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return calendar.Fields{}, false, cxerror.Wrap(err, "invalid "+fields[i].String()+" in "+strconv.Quote(text)).
				WithCode(cxerror.CodeInvalidInput)
		}
		x = x.With(fields[i], n)
	}
	return x, true, nil
}

func fieldList(fields []calendar.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}

// dates is the parsed input of a command
type dates struct {
	texts []string
	kind  calendar.Kind
	p     precision.Precision
	opts  []calendar.Option
	rows  nullable.Vector[calendar.Fields]
}

// readDates collects and parses the input dates of a command
func (a *app) readDates(f *calendarFlags, args []string) (dates, error) {
	var d dates
	var err error
	if d.kind, d.p, d.opts, err = f.settings(a); err != nil {
		return d, err
	}
	if d.texts, err = a.records(args, f.input); err != nil {
		return d, err
	}
	if len(d.texts) == 0 {
		return d, cxerror.New("no dates given").WithCode(cxerror.CodeInvalidInput)
	}
	d.rows, err = parseRecords(d.kind, d.p, d.texts)
	return d, err
}
