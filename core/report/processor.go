package report

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/leofalp/llmreport/core/extract"
	"github.com/leofalp/llmreport/core/parse"
	"github.com/leofalp/llmreport/internal/utils"
	"github.com/leofalp/llmreport/providers/sink"
)

// documentIndent matches the layout of hand-maintained report files.
const documentIndent = "    "

// previewLen bounds the response preview written to the log.
const previewLen = 500

// ErrEmptyRunID is returned by Process when no run ID is given.
var ErrEmptyRunID = errors.New("report: run ID is required")

// Outcome records what happened to one response.
type Outcome struct {
	RunID      string         `json:"run_id"`
	Extraction extract.Result `json:"extraction"`
	Summary    *Summary       `json:"summary,omitempty"`
	RawSaved   bool           `json:"raw_saved"`
	JSONSaved  bool           `json:"json_saved"`
	TextSaved  bool           `json:"text_saved"`
	Salvaged   bool           `json:"salvaged"`
	Files      []string       `json:"files"`
	Errors     []error        `json:"-"`
}

// Success reports whether a report, JSON or text, was persisted.
func (o *Outcome) Success() bool {
	return o.JSONSaved || o.TextSaved
}

// Err joins every sink error, or returns nil.
func (o *Outcome) Err() error {
	return errors.Join(o.Errors...)
}

// Processor persists responses through a sink.
type Processor struct {
	sink    sink.Sink
	logger  *slog.Logger
	salvage bool
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithSalvage enables the jsonrepair salvage artifact on extraction failure.
func WithSalvage(enabled bool) Option {
	return func(p *Processor) {
		p.salvage = enabled
	}
}

// NewProcessor returns a Processor writing to s.
func NewProcessor(s sink.Sink, opts ...Option) *Processor {
	p := &Processor{
		sink:   s,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process saves raw, extracts the report and saves the result. It returns
// an error only for an empty run ID; everything else lands on the Outcome.
func (p *Processor) Process(ctx context.Context, runID, raw string) (*Outcome, error) {
	if strings.TrimSpace(runID) == "" {
		return nil, ErrEmptyRunID
	}

	logger := p.logger.With(slog.String("run_id", runID))
	outcome := &Outcome{RunID: runID}

	outcome.RawSaved = p.save(ctx, logger, outcome, sink.KindRaw, []byte(raw))

	result := extract.Extract(raw)
	outcome.Extraction = result

	if result.Succeeded {
		p.saveDocument(ctx, logger, outcome, result)
	} else {
		p.saveFallback(ctx, logger, outcome, raw, result)
	}

	logger.Info("response processed",
		slog.Bool("success", outcome.Success()),
		slog.String("method", result.Method.String()),
		slog.Bool("repaired", result.Repaired),
		slog.Int("files", len(outcome.Files)),
		slog.Int("errors", len(outcome.Errors)),
	)
	logger.Debug("response preview", slog.String("content", utils.TruncateString(raw, previewLen)))

	return outcome, nil
}

func (p *Processor) saveDocument(ctx context.Context, logger *slog.Logger, outcome *Outcome, result extract.Result) {
	summary := Summarize(result.Document)
	outcome.Summary = &summary

	content, err := utils.MarshalIndentNoEscape(result.Document, documentIndent)
	if err != nil {
		outcome.Errors = append(outcome.Errors, err)
		logger.Error("encode report failed", slog.String("error", err.Error()))
		return
	}

	outcome.JSONSaved = p.save(ctx, logger, outcome, sink.KindDocument, content)
}

func (p *Processor) saveFallback(ctx context.Context, logger *slog.Logger, outcome *Outcome, raw string, result extract.Result) {
	logger.Warn("report extraction failed, saving text",
		slog.String("error", result.ErrorMessage()),
		slog.Int("slice_chars", len(result.RawSlice)),
	)

	text := result.RawSlice
	if text == "" {
		text = raw
	}
	outcome.TextSaved = p.save(ctx, logger, outcome, sink.KindText, []byte(text))

	if !p.salvage || result.RawSlice == "" {
		return
	}

	document, err := parse.Salvage(result.RawSlice)
	if err != nil {
		logger.Debug("salvage failed", slog.String("error", err.Error()))
		return
	}

	content, err := utils.MarshalIndentNoEscape(document, documentIndent)
	if err != nil {
		outcome.Errors = append(outcome.Errors, err)
		return
	}
	outcome.Salvaged = p.save(ctx, logger, outcome, sink.KindSalvage, content)
}

// save writes one artifact and records the location and any error. A sink
// that reports a location alongside an error, such as sink.Multi with one
// failing member, still counts as saved.
func (p *Processor) save(ctx context.Context, logger *slog.Logger, outcome *Outcome, kind sink.Kind, content []byte) bool {
	location, err := p.sink.Save(ctx, sink.Artifact{RunID: outcome.RunID, Kind: kind, Content: content})
	if location != "" {
		outcome.Files = append(outcome.Files, location)
	}
	if err != nil {
		outcome.Errors = append(outcome.Errors, err)
		logger.Error("save artifact failed",
			slog.String("kind", string(kind)),
			slog.String("location", location),
			slog.String("error", err.Error()),
		)
		return location != ""
	}
	logger.Debug("artifact saved", slog.String("kind", string(kind)), slog.String("location", location))
	return true
}
