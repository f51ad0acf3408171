package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leofalp/llmreport/core/client"
	"github.com/leofalp/llmreport/core/client/middleware"
	"github.com/leofalp/llmreport/core/report"
	"github.com/leofalp/llmreport/internal/config"
	"github.com/leofalp/llmreport/providers/observability/slogobs"
	"github.com/leofalp/llmreport/providers/sink"
	"github.com/leofalp/llmreport/providers/sink/filesink"
	"github.com/leofalp/llmreport/providers/sink/pgsink"
	"github.com/leofalp/llmreport/providers/sink/s3sink"
)

// environment is what every subcommand starts from.
type environment struct {
	cfg    config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newEnvironment(stdout, stderr io.Writer) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return &environment{
		cfg:    cfg,
		logger: slogobs.New(slogobs.WithOutput(stderr)),
		stdout: stdout,
		stderr: stderr,
	}, nil
}

// sinkOptions selects how the local directory sink lays out files.
type sinkOptions struct {
	outputDir  string
	runSubdirs bool
}

// openSink returns the configured sinks as one. The local directory sink is
// always present; S3 and Postgres are added when configured. close releases
// the database pool and is never nil.
func (e *environment) openSink(ctx context.Context, opts sinkOptions) (sink.Sink, func(), error) {
	sinks := sink.Multi{filesink.New(opts.outputDir, filesink.WithRunSubdirs(opts.runSubdirs))}
	closeFn := func() {}

	if e.cfg.S3Enabled() {
		s3, err := s3sink.New(e.cfg.S3)
		if err != nil {
			return nil, closeFn, fmt.Errorf("s3 sink: %w", err)
		}
		sinks = append(sinks, s3)
	}

	if e.cfg.PostgresEnabled() {
		pool, err := pgxpool.New(ctx, e.cfg.PostgresURL)
		if err != nil {
			return nil, closeFn, fmt.Errorf("postgres sink: %w", err)
		}
		pg := pgsink.New(pool, pgsink.WithTableName(e.cfg.PostgresTable))
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, closeFn, fmt.Errorf("postgres sink: %w", err)
		}
		sinks = append(sinks, pg)
		closeFn = pool.Close
	}

	e.logger.Debug("sinks ready",
		slog.Int("count", len(sinks)),
		slog.Bool("s3", e.cfg.S3Enabled()),
		slog.Bool("postgres", e.cfg.PostgresEnabled()),
	)
	return sinks, closeFn, nil
}

func (e *environment) newProcessor(s sink.Sink, salvage bool) *report.Processor {
	return report.NewProcessor(s,
		report.WithLogger(e.logger),
		report.WithSalvage(salvage || e.cfg.Salvage),
	)
}

// requestMiddleware builds the client middleware from the configuration:
// logging outermost, then the response cache, then the per-request timeout.
func (e *environment) requestMiddleware() ([]client.Middleware, error) {
	chain := []client.Middleware{
		middleware.NewLoggingMiddleware(e.logger, middleware.ParseLogLevel(e.cfg.LogLevel)),
	}

	if e.cfg.CacheSize > 0 {
		cache, err := middleware.NewCacheMiddleware(e.cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		chain = append(chain, cache)
	}

	if e.cfg.RequestTimeout > 0 {
		chain = append(chain, middleware.NewTimeoutMiddleware(e.cfg.RequestTimeout))
	}

	return chain, nil
}

// newRunID returns a sortable run ID: UTC timestamp plus a short random suffix.
func newRunID(now time.Time) string {
	return now.UTC().Format("20060102T150405Z") + "-" + uuid.NewString()[:8]
}

// printOutcome writes a short human-readable summary of outcome.
func printOutcome(w io.Writer, outcome *report.Outcome) {
	result := outcome.Extraction
	fmt.Fprintf(w, "run:      %s\n", outcome.RunID)
	if result.Succeeded {
		fmt.Fprintf(w, "method:   %s", result.Method)
		if result.Repaired {
			fmt.Fprint(w, " (repaired)")
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "error:    %s\n", result.ErrorMessage())
	}
	if s := outcome.Summary; s != nil {
		if s.PatientName != "" {
			fmt.Fprintf(w, "patient:  %s\n", s.PatientName)
		}
		if s.StudyDate != "" {
			fmt.Fprintf(w, "date:     %s\n", s.StudyDate)
		}
		fmt.Fprintf(w, "docs:     %d\n", s.DocumentCount)
	}
	for _, file := range outcome.Files {
		fmt.Fprintf(w, "saved:    %s\n", file)
	}
}

// outcomeError converts an outcome into the command error: extraction
// failure or nothing persisted is an error, partial sink failures are not.
func outcomeError(outcome *report.Outcome) error {
	if !outcome.Success() {
		return fmt.Errorf("run %s: nothing was saved: %w", outcome.RunID, outcome.Err())
	}
	if !outcome.Extraction.Succeeded {
		return fmt.Errorf("run %s: %w", outcome.RunID, outcome.Extraction.Err)
	}
	return nil
}
