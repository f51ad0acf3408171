package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/leofalp/llmreport/core/attachment"
)

// errCheckFailed is returned when a required setting or file is missing.
var errCheckFailed = errors.New("configuration check failed")

func runCheck(_ context.Context, env *environment, args []string) error {
	cfg := env.cfg

	fs := newFlagSet("check", env.stderr)
	attachmentsDir := fs.String("attachments", cfg.AttachmentsDir, "directory of files to attach")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	w := env.stdout
	ok := true

	fmt.Fprintln(w, "Environment:")
	for _, v := range []struct {
		name     string
		value    string
		required bool
	}{
		{"ABACUS_API_KEY", cfg.Abacus.APIKey, true},
		{"ABACUS_DEPLOYMENT_ID", cfg.Abacus.DeploymentID, true},
		{"ABACUS_DEPLOYMENT_TOKEN", cfg.Abacus.DeploymentToken, false},
	} {
		state := "set"
		if v.value == "" {
			state = "missing"
			if v.required {
				ok = false
			} else {
				state = "not set (optional)"
			}
		}
		fmt.Fprintf(w, "  %-24s %s\n", v.name, state)
	}

	fmt.Fprintln(w, "Sinks:")
	fmt.Fprintf(w, "  %-24s %s\n", "directory", cfg.OutputDir)
	fmt.Fprintf(w, "  %-24s %t\n", "s3", cfg.S3Enabled())
	fmt.Fprintf(w, "  %-24s %t\n", "postgres", cfg.PostgresEnabled())

	fmt.Fprintf(w, "Attachments (%s):\n", *attachmentsDir)
	statuses, err := attachment.ValidateDir(*attachmentsDir, cfg.ExpectedFiles)
	if err != nil {
		fmt.Fprintf(w, "  %v\n", err)
		ok = false
	}
	for _, status := range statuses {
		mark := "found"
		if !status.Exists {
			mark = "MISSING"
			ok = false
		}
		fmt.Fprintf(w, "  %-40s %s\n", status.Name, mark)
	}

	if !ok {
		return errCheckFailed
	}
	return nil
}
