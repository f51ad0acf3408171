package slogobs

import (
	"io"
	"log/slog"
	"os"
)

// Option is a functional option for configuring the logger.
type Option func(*config)

type config struct {
	format    Format
	level     slog.Level
	output    io.Writer
	addSource bool
}

// WithFormat sets the log output format.
func WithFormat(format Format) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput sets the output writer for logs.
func WithOutput(output io.Writer) Option {
	return func(c *config) {
		c.output = output
	}
}

// WithSource adds the caller's file and line to every record.
func WithSource(enabled bool) Option {
	return func(c *config) {
		c.addSource = enabled
	}
}

func defaultConfig() *config {
	return &config{
		format: GetFormatFromEnv(),
		level:  GetLogLevelFromEnv(),
		output: os.Stderr,
	}
}

func applyOptions(opts ...Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
