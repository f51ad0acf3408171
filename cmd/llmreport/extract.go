package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/leofalp/llmreport/internal/utils"
	"github.com/leofalp/llmreport/providers/sink"
)

func runExtract(ctx context.Context, env *environment, args []string) error {
	cfg := env.cfg

	fs := newFlagSet("extract", env.stderr)
	outputDir := fs.String("out", cfg.OutputDir, "directory for report artifacts")
	input := fs.String("in", "", "raw response file (default <out>/raw_response.txt)")
	runID := fs.String("run-id", "", "run identifier (generated when empty)")
	salvage := fs.Bool("salvage", false, "write a best-effort repaired JSON when extraction fails")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	path := utils.FirstNonEmpty(*input, filepath.Join(*outputDir, sink.KindRaw.FileName()))
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read raw response: %w", err)
	}

	s, closeSink, err := env.openSink(ctx, sinkOptions{outputDir: *outputDir})
	if err != nil {
		return err
	}
	defer closeSink()

	id := utils.FirstNonEmpty(*runID, newRunID(time.Now()))
	outcome, err := env.newProcessor(s, *salvage).Process(ctx, id, string(raw))
	if err != nil {
		return err
	}

	printOutcome(env.stdout, outcome)
	return outcomeError(outcome)
}
