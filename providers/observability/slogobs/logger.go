package slogobs

import "log/slog"

// New returns a logger configured from the environment and opts.
func New(opts ...Option) *slog.Logger {
	cfg := applyOptions(opts...)
	handlerOpts := &slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: cfg.addSource,
	}

	var handler slog.Handler
	switch cfg.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	default:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	return slog.New(handler)
}

// SetDefault builds a logger with New, installs it as slog's default and
// returns it.
func SetDefault(opts ...Option) *slog.Logger {
	logger := New(opts...)
	slog.SetDefault(logger)
	return logger
}
