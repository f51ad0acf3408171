package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/leofalp/llmreport/core/batch"
)

const defaultWorkers = 4

func runBatch(ctx context.Context, env *environment, args []string) error {
	cfg := env.cfg

	fs := newFlagSet("batch", env.stderr)
	outputDir := fs.String("out", cfg.OutputDir, "root directory; each input gets its own subdirectory")
	workers := fs.Int("workers", defaultWorkers, "number of files processed concurrently")
	salvage := fs.Bool("salvage", false, "write a best-effort repaired JSON when extraction fails")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	inputs := uniqueInputs(fs.Args())
	if len(inputs) == 0 {
		return fmt.Errorf("%w: at least one raw response file is required", errUsage)
	}
	if *workers < 1 {
		return fmt.Errorf("%w: -workers must be at least 1", errUsage)
	}

	s, closeSink, err := env.openSink(ctx, sinkOptions{outputDir: *outputDir, runSubdirs: true})
	if err != nil {
		return err
	}
	defer closeSink()

	processor := env.newProcessor(s, *salvage)
	runIDs := batchRunIDs(inputs)

	var (
		mu       sync.Mutex
		failures int
	)
	err = batch.Run(ctx, inputs, *workers, func(ctx context.Context, path string) error {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		outcome, err := processor.Process(ctx, runIDs[path], string(raw))
		if err != nil {
			return err
		}

		mu.Lock()
		defer mu.Unlock()
		printOutcome(env.stdout, outcome)
		fmt.Fprintln(env.stdout)
		if err := outcomeError(outcome); err != nil {
			failures++
			return err
		}
		return nil
	})

	env.logger.Info("batch finished",
		slog.Int("inputs", len(inputs)),
		slog.Int("failed_extractions", failures),
	)
	return err
}

// uniqueInputs drops repeated paths, comparing cleaned forms, so one file is
// never processed twice into the same run directory. Order is preserved.
func uniqueInputs(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		key := filepath.Clean(path)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, path)
	}
	return out
}

// batchRunIDs names each run after its input file. Inputs sharing a file
// name, such as several raw_response.txt from different directories, get a
// random suffix so their artifacts stay apart.
func batchRunIDs(inputs []string) map[string]string {
	counts := make(map[string]int, len(inputs))
	for _, path := range inputs {
		counts[fileStem(path)]++
	}

	ids := make(map[string]string, len(inputs))
	for _, path := range inputs {
		stem := fileStem(path)
		if counts[stem] > 1 {
			stem += "-" + uuid.NewString()[:8]
		}
		ids[path] = stem
	}
	return ids
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
