// File: engine.go
// Title: Batch Runner
// Description: Chunked concurrent evaluation of calendar jobs with ordered
//              reassembly, position re-basing of failures and cancellation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package batch

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/msto63/chronox/foundation/clock/calendar"
	"github.com/msto63/chronox/foundation/clock/nullable"
	cxerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/foundation/core/log"
)

// Config holds runner configuration
type Config struct {
	Workers   int
	ChunkSize int
}

// DefaultConfig returns one worker per CPU and chunks of 4096 rows.
func DefaultConfig() Config {
	return Config{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: 4096,
	}
}

// Runner splits input rows into chunks and runs a Job on each chunk
// concurrently.
type Runner struct {
	config Config
	logger *log.Logger
}

// NewRunner creates a runner. Zero config values fall back to the defaults
// and a nil logger discards output.
func NewRunner(cfg Config, logger *log.Logger) *Runner {
	def := DefaultConfig()
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = def.ChunkSize
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Runner{config: cfg, logger: logger.WithName("batch")}
}

type chunkResult struct {
	out calendar.Vector
	err error
}

// Run builds calendar vectors from rows chunk by chunk, applies the job's
// stages and joins the chunks in input order. Data errors from every chunk
// are collected into one error whose positions refer to rows of the whole
// input. Cancelling ctx stops the run with a CANCELED error, also when a
// chunk is already in progress.
func (r *Runner) Run(ctx context.Context, job Job, rows nullable.Vector[calendar.Fields]) (calendar.Vector, error) {
	const op = "batch run"
	timer := r.logger.StartTimer(op).
		WithField("calendar", job.Kind.Name()).
		WithField("rows", rows.Len())

	if rows.Len() == 0 {
		out, err := r.runChunk(ctx, job, rows)
		timer.StopWithError(err)
		return out, err
	}

	size := r.config.ChunkSize
	n := (rows.Len() + size - 1) / size
	results := make([]chunkResult, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)
	for i := 0; i < n; i++ {
		from := i * size
		to := min(from+size, rows.Len())
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := r.runChunk(gctx, job, rows.Slice(from, to))
			if canceled(err) {
				return err
			}
			results[i] = chunkResult{out: out, err: err}
			r.logger.Debug("chunk finished", log.Fields{"chunk": i, "from": from, "to": to, "failed": err != nil})
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		err = cxerror.Wrap(err, "batch canceled").WithCode(cxerror.CodeCanceled).WithOperation(op)
		timer.StopWithError(err)
		return calendar.Vector{}, err
	}

	var failures cxerror.Failures
	parts := make([]calendar.Vector, 0, n)
	for i, res := range results {
		if res.err != nil {
			rebase(&failures, i*size, res.err)
			continue
		}
		parts = append(parts, res.out)
	}
	if err := failures.Err(op); err != nil {
		r.logger.LogError(err)
		timer.StopWithError(err)
		return calendar.Vector{}, err
	}
	out, err := calendar.Concat(parts...)
	timer.StopWithError(err)
	return out, err
}

func (r *Runner) runChunk(ctx context.Context, job Job, rows nullable.Vector[calendar.Fields]) (calendar.Vector, error) {
	v, err := calendar.New(job.Kind, job.Precision, rows, job.Options...)
	if err != nil {
		return calendar.Vector{}, err
	}
	for _, stage := range job.Stages {
		if err := ctx.Err(); err != nil {
			return calendar.Vector{}, err
		}
		if v, err = stage.Apply(ctx, v); err != nil {
			return calendar.Vector{}, cxerror.Wrap(err, "stage "+stage.Name()+" failed")
		}
	}
	return v, nil
}

// canceled reports whether err stems from a canceled or expired context.
func canceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// rebase records err at every chunk-relative position it names, shifted by
// offset. Errors without positions are recorded at the chunk's first row.
func rebase(failures *cxerror.Failures, offset int, err error) {
	var cxErr *cxerror.Error
	if errors.As(err, &cxErr) {
		if raw, ok := cxErr.Detail("positions"); ok {
			if positions, ok := raw.([]int); ok && len(positions) > 0 {
				cause := cxErr.RootCause()
				for _, p := range positions {
					failures.Record(offset+p, cause)
				}
				return
			}
		}
	}
	failures.Record(offset, err)
}
