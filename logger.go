package mdc

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with mdc-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSet adds a dimension name field to the logger.
func (l *Logger) WithSet(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("set", name),
	}
}

// WithDimension adds a dimension count field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithLambda adds a trade-off parameter field to the logger.
func (l *Logger) WithLambda(lambda float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("lambda", lambda),
	}
}

// LogBuildGrid logs a product-grid build.
func (l *Logger) LogBuildGrid(ctx context.Context, cells int, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "grid build failed",
			"cells", cells,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "grid build completed",
			"cells", cells,
			"took", took,
		)
	}
}

// LogBuildGraph logs a product-graph build, including the loss pass.
func (l *Logger) LogBuildGraph(ctx context.Context, blocks int, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "graph build failed",
			"blocks", blocks,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "graph build completed",
			"blocks", blocks,
			"took", took,
		)
	}
}

// LogSolve logs an optimal-partition computation.
func (l *Logger) LogSolve(ctx context.Context, lambda float64, size int, cost float64, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solve failed",
			"lambda", lambda,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "solve completed",
			"lambda", lambda,
			"size", size,
			"cost", cost,
			"took", took,
		)
	}
}
