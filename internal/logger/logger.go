package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vineetp6/serving/internal/env"
	"github.com/vineetp6/serving/internal/xfs"
)

// Option configures the logger.
type Option func(*options)

type options struct {
	logToFile bool
	logFile   string
}

// WithLogToFile enables mirroring log records to a rotated file.
func WithLogToFile(enabled bool) Option {
	return func(o *options) {
		o.logToFile = enabled
	}
}

// WithLogFile sets the log file path.
func WithLogFile(path string) Option {
	return func(o *options) {
		o.logFile = path
	}
}

// New builds the process logger: a tinted console handler on stderr, plus a
// JSON handler writing to a size-rotated file when enabled.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	level := slog.LevelDebug
	if environment.IsProduction() {
		level = slog.LevelInfo
	}

	handlers := []slog.Handler{
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    environment.IsProduction(),
		}),
	}

	if o.logToFile && o.logFile != "" {
		path := xfs.ExpandTilde(o.logFile)
		if err := xfs.EnsureDir(path); err == nil {
			handlers = append(handlers, slog.NewJSONHandler(&lumberjack.Logger{
				Filename:   path,
				MaxSize:    50, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}, &slog.HandlerOptions{Level: level}))
		}
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0])
	}
	return slog.New(teeHandler(handlers))
}

// teeHandler fans one record out to every handler.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, h := range t {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make(teeHandler, len(t))
	for i, h := range t {
		handlers[i] = h.WithAttrs(attrs)
	}
	return handlers
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	handlers := make(teeHandler, len(t))
	for i, h := range t {
		handlers[i] = h.WithGroup(name)
	}
	return handlers
}
