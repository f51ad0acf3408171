package sink

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind identifies an artifact within a run.
type Kind string

const (
	KindRaw      Kind = "raw"      // unmodified model response
	KindDocument Kind = "document" // extracted JSON report
	KindText     Kind = "text"     // fallback when extraction failed
	KindSalvage  Kind = "salvage"  // jsonrepair output, diagnostic only
)

var fileNames = map[Kind]string{
	KindRaw:      "raw_response.txt",
	KindDocument: "correlation_report.json",
	KindText:     "correlation_report.txt",
	KindSalvage:  "correlation_report.salvaged.json",
}

// FileName returns the conventional file name for the kind, or "" for an
// unknown kind.
func (k Kind) FileName() string {
	return fileNames[k]
}

// ContentType returns the MIME type used when storing the kind.
func (k Kind) ContentType() string {
	switch k {
	case KindDocument, KindSalvage:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// IsJSON reports whether artifacts of this kind hold a JSON document.
func (k Kind) IsJSON() bool {
	return k == KindDocument || k == KindSalvage
}

// ErrInvalidArtifact is returned by Validate.
var ErrInvalidArtifact = errors.New("sink: invalid artifact")

// Artifact is one output of a processing run.
type Artifact struct {
	RunID   string
	Kind    Kind
	Content []byte
}

// Validate checks that the artifact has a run ID and a known kind.
func (a Artifact) Validate() error {
	if strings.TrimSpace(a.RunID) == "" {
		return fmt.Errorf("%w: run ID is required", ErrInvalidArtifact)
	}
	if a.Kind.FileName() == "" {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidArtifact, a.Kind)
	}
	return nil
}

// Sink persists artifacts. Save returns a human-readable location such as a
// file path or object URL.
type Sink interface {
	Save(ctx context.Context, artifact Artifact) (string, error)
}

// Multi saves every artifact to all of its sinks. Failures do not stop the
// remaining sinks; they are joined into the returned error. The location is
// the comma-separated list of successful locations.
type Multi []Sink

// Save implements Sink.
func (m Multi) Save(ctx context.Context, artifact Artifact) (string, error) {
	locations := make([]string, 0, len(m))
	var errs []error

	for _, s := range m {
		location, err := s.Save(ctx, artifact)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		locations = append(locations, location)
	}

	return strings.Join(locations, ", "), errors.Join(errs...)
}
