package kmpp

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kmpp-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogPick logs the choice of one centroid during seeding.
func (l *Logger) LogPick(ctx context.Context, round, index int, mass float64) {
	l.DebugContext(ctx, "centroid picked",
		"round", round,
		"index", index,
		"mass", mass,
	)
}

// LogSeed logs a seeding operation. Point count, k and dimension come from
// the With* fields of the logger.
func (l *Logger) LogSeed(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "seeding failed", "error", err)
	} else {
		l.DebugContext(ctx, "seeding completed")
	}
}

// LogConvergence logs a convergence check.
func (l *Logger) LogConvergence(ctx context.Context, threshold float64, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "convergence check failed",
			"threshold", threshold,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "convergence checked",
			"threshold", threshold,
			"converged", converged,
		)
	}
}

// LogRestarts logs a multi-restart seeding.
func (l *Logger) LogRestarts(ctx context.Context, restarts, best int, potential float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "restarts failed",
			"restarts", restarts,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "restarts completed",
			"restarts", restarts,
			"best", best,
			"potential", potential,
		)
	}
}
