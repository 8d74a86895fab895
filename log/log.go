// Package log provides a minimal structured logging interface with an
// slog-backed default implementation.
//
// Overview:
//   - Responsibility: Define the stable logging interface used across flagx
//   - Key Types: Logger interface with structured key-value logging
//   - Concurrency Model: Logger implementations must be safe for concurrent use
//   - Error Semantics: Error method accepts error as first parameter
//   - Performance Notes: Key-value helpers avoid intermediate maps
//
// Usage:
//
//	logger := log.New(log.Options{Level: slog.LevelDebug})
//	logger.Info("registry updated", log.Int("flags", 3))
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger defines a structured logging interface compatible with slog
// concepts. Implementations must be safe for concurrent use.
type Logger interface {
	// With returns a new Logger with the given key-value pairs attached.
	With(kv ...any) Logger

	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, kv ...any)

	// Info logs an informational message with optional key-value pairs.
	Info(msg string, kv ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, kv ...any)

	// Error logs an error message with the error and optional key-value pairs.
	Error(err error, msg string, kv ...any)
}

// Str creates a string key-value pair for structured logging.
func Str(k, v string) any {
	return []any{k, v}
}

// Int creates an integer key-value pair for structured logging.
func Int(k string, v int) any {
	return []any{k, v}
}

// Dur creates a duration key-value pair for structured logging.
func Dur(k string, v time.Duration) any {
	return []any{k, v}
}

// Format specifies the output format for logs.
type Format string

const (
	// FormatText outputs logs as key=value text.
	FormatText Format = "text"
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = "json"
)

// Options configures the default logger.
type Options struct {
	Format Format     // Output format (default: text)
	Level  slog.Level // Minimum log level
	Writer io.Writer  // Output writer (default: os.Stderr)
}

// New creates a Logger backed by log/slog with the given options.
func New(opts Options) Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	var handler slog.Handler
	if opts.Format == FormatJSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return &logger{s: slog.New(handler)}
}

// Nop returns a Logger that discards all output.
func Nop() Logger {
	return nopLogger{}
}

type logger struct {
	s *slog.Logger
}

func (l *logger) With(kv ...any) Logger {
	return &logger{s: l.s.With(flatten(kv)...)}
}

func (l *logger) Debug(msg string, kv ...any) {
	l.log(slog.LevelDebug, msg, kv)
}

func (l *logger) Info(msg string, kv ...any) {
	l.log(slog.LevelInfo, msg, kv)
}

func (l *logger) Warn(msg string, kv ...any) {
	l.log(slog.LevelWarn, msg, kv)
}

func (l *logger) Error(err error, msg string, kv ...any) {
	args := flatten(kv)
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.s.Log(context.Background(), slog.LevelError, msg, args...)
}

func (l *logger) log(level slog.Level, msg string, kv []any) {
	l.s.Log(context.Background(), level, msg, flatten(kv)...)
}

// flatten expands pairs produced by Str/Int/Dur into alternating slog args.
// Plain values pass through unchanged.
func flatten(kv []any) []any {
	args := make([]any, 0, len(kv)*2)
	for _, item := range kv {
		if pair, ok := item.([]any); ok && len(pair) == 2 {
			args = append(args, pair...)
			continue
		}
		args = append(args, item)
	}
	return args
}

type nopLogger struct{}

func (nopLogger) With(kv ...any) Logger              { return nopLogger{} }
func (nopLogger) Debug(msg string, kv ...any)        {}
func (nopLogger) Info(msg string, kv ...any)         {}
func (nopLogger) Warn(msg string, kv ...any)         {}
func (nopLogger) Error(err error, msg string, kv ...any) {}
