// Package log provides structured logging for chronox.
//
// Package: log
// Title: chronox Structured Logging
// Description: Leveled structured logging with JSON, text, console and logfmt
//              output. The pure clock and calendar packages never log; the
//              batch runner and the command-line front end do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Trimmed to synchronous CLI logging
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatJSON).
//		WithCorrelationID(id)
//
//	logger.Info("calendar built", log.Int("rows", n))
//
//	timer := logger.StartTimer("convert")
//	err := run()
//	timer.StopWithError(err)
package log
