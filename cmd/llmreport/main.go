// Command llmreport sends a correlation prompt with attachments to a hosted
// model deployment and turns the free-form reply into a JSON report.
//
// Usage:
//
//	llmreport send    [-prompt-file path] [-attachments dir] [-out dir] [-run-id id]
//	llmreport extract [-in raw_response.txt] [-out dir] [-run-id id]
//	llmreport batch   [-out dir] [-workers n] file...
//	llmreport check   [-attachments dir]
//
// Configuration is read from the environment and an optional .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usageText = `Usage: llmreport <command> [flags]

Commands:
  send     send the prompt and attachments, then extract and save the report
  extract  extract the report from a saved raw response
  batch    extract reports from many saved raw responses concurrently
  check    report configuration and attachment status without network calls

Run "llmreport <command> -h" for command flags.
`

// command runs one subcommand. Flag parse errors are returned as-is so run
// can map them to the usage exit code.
type command func(ctx context.Context, env *environment, args []string) error

var commands = map[string]command{
	"send":    runSend,
	"extract": runExtract,
	"batch":   runBatch,
	"check":   runCheck,
}

// errUsage marks a failure caused by the command line rather than the run.
var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches args to a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return exitUsage
	}

	name := args[0]
	if name == "-h" || name == "-help" || name == "--help" || name == "help" {
		fmt.Fprint(stdout, usageText)
		return exitOK
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "llmreport: unknown command %q\n\n%s", name, usageText)
		return exitUsage
	}

	env, err := newEnvironment(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "llmreport: %v\n", err)
		return exitError
	}

	err = cmd(ctx, env, args[1:])
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "llmreport %s: %v\n", name, err)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "llmreport %s: %v\n", name, err)
		return exitError
	}
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("llmreport "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parseFlags parses args and tags parse failures as usage errors.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}
