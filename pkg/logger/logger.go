// Package logger builds the slog loggers used across the system, with a
// pretty charmbracelet handler for interactive CLI use and a JSON handler
// for structured service logs.
package logger

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

type config struct {
	level   slog.Level
	pretty  bool
	json    bool
	source  bool
	writers []io.Writer
}

// Option configures a logger created with New.
type Option func(*config)

// WithDebug sets the log level to Debug when true, Info otherwise.
func WithDebug(debug bool) Option {
	return func(c *config) {
		if debug {
			c.level = slog.LevelDebug
		} else {
			c.level = slog.LevelInfo
		}
	}
}

// WithPretty enables the charmbracelet/log handler for colorized,
// human-friendly CLI output.
func WithPretty(pretty bool) Option {
	return func(c *config) { c.pretty = pretty }
}

// WithJSON enables slog's JSON handler for structured service logs.
func WithJSON(json bool) Option {
	return func(c *config) { c.json = json }
}

// WithWriter overrides the output writer. Defaults to os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(c *config) { c.writers = []io.Writer{w} }
}

// WithWriters sets multiple output writers (combined via io.MultiWriter).
func WithWriters(w ...io.Writer) Option {
	return func(c *config) { c.writers = w }
}

// WithSource includes source file:line in log output.
func WithSource(source bool) Option {
	return func(c *config) { c.source = source }
}

// New builds a logger. JSON takes precedence over pretty when both are set.
func New(opts ...Option) *slog.Logger {
	cfg := config{level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.writers) == 0 {
		cfg.writers = []io.Writer{os.Stderr}
	}
	w := io.MultiWriter(cfg.writers...)

	var handler slog.Handler
	switch {
	case cfg.json:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     cfg.level,
			AddSource: cfg.source,
		})
	case cfg.pretty:
		charmLevel := charmlog.InfoLevel
		if cfg.level == slog.LevelDebug {
			charmLevel = charmlog.DebugLevel
		}
		handler = charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmLevel,
			ReportCaller:    cfg.source,
			ReportTimestamp: true,
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     cfg.level,
			AddSource: cfg.source,
		})
	}
	return slog.New(handler)
}
