package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/leofalp/llmreport/core/attachment"
	"github.com/leofalp/llmreport/core/client"
	"github.com/leofalp/llmreport/internal/utils"
	"github.com/leofalp/llmreport/providers/ai"
	"github.com/leofalp/llmreport/providers/ai/abacus"
)

func runSend(ctx context.Context, env *environment, args []string) error {
	cfg := env.cfg

	fs := newFlagSet("send", env.stderr)
	promptFile := fs.String("prompt-file", cfg.PromptFile, "file holding the prompt text")
	attachmentsDir := fs.String("attachments", cfg.AttachmentsDir, "directory of files to attach")
	outputDir := fs.String("out", cfg.OutputDir, "directory for report artifacts")
	runID := fs.String("run-id", "", "run identifier (generated when empty)")
	noMarkers := fs.Bool("no-markers", false, "do not ask the model for JSON_REPORT_START/END markers")
	salvage := fs.Bool("salvage", false, "write a best-effort repaired JSON when extraction fails")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	if cfg.Abacus.DeploymentID == "" {
		return abacus.ErrMissingDeployment
	}

	promptBytes, err := os.ReadFile(*promptFile)
	if err != nil {
		return fmt.Errorf("read prompt: %w", err)
	}
	prompt := strings.TrimSpace(string(promptBytes))

	attachments, _, err := attachment.LoadDir(*attachmentsDir, cfg.ExpectedFiles, env.logger)
	if err != nil && !errors.Is(err, attachment.ErrDirNotFound) {
		return fmt.Errorf("load attachments: %w", err)
	}
	if err != nil {
		env.logger.Warn("sending without attachments", slog.String("dir", *attachmentsDir))
	}

	middlewares, err := env.requestMiddleware()
	if err != nil {
		return err
	}

	provider := abacus.New().WithDeployment(cfg.Abacus.DeploymentID, cfg.Abacus.DeploymentToken)
	provider.WithAPIKey(cfg.Abacus.APIKey)
	if cfg.Abacus.BaseURL != "" {
		provider.WithBaseURL(cfg.Abacus.BaseURL)
	}

	c, err := client.New(provider,
		client.WithModel(cfg.Model),
		client.WithGenerationConfig(ai.GenerationConfig{
			Temperature: utils.Ptr(cfg.Temperature),
			MaxTokens:   cfg.MaxTokens,
		}),
		client.WithReportMarkers(!*noMarkers),
		client.WithMiddleware(middlewares...),
	)
	if err != nil {
		return err
	}

	id := utils.FirstNonEmpty(*runID, newRunID(time.Now()))
	env.logger.Info("sending prompt",
		slog.String("run_id", id),
		slog.String("prompt_file", *promptFile),
		slog.Int("attachments", len(attachments)),
	)

	response, err := c.SendMessage(ctx, prompt, attachments...)
	if err != nil {
		return err
	}

	s, closeSink, err := env.openSink(ctx, sinkOptions{outputDir: *outputDir})
	if err != nil {
		return err
	}
	defer closeSink()

	outcome, err := env.newProcessor(s, *salvage).Process(ctx, id, response.Content)
	if err != nil {
		return err
	}

	printOutcome(env.stdout, outcome)
	return outcomeError(outcome)
}
