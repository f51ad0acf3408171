// Package filesink writes report artifacts to a local directory using the
// conventional file names (raw_response.txt, correlation_report.json, ...).
package filesink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leofalp/llmreport/providers/sink"
)

// Sink writes artifacts under a root directory.
type Sink struct {
	dir       string
	perRunDir bool
}

var _ sink.Sink = (*Sink)(nil)

// Option configures a Sink.
type Option func(*Sink)

// WithRunSubdirs places each run's artifacts in <dir>/<runID>/ instead of
// directly in dir. Batch runs need this so files do not overwrite each other.
func WithRunSubdirs(enabled bool) Option {
	return func(s *Sink) {
		s.perRunDir = enabled
	}
}

// New returns a Sink rooted at dir. The directory is created on first save.
func New(dir string, opts ...Option) *Sink {
	s := &Sink{dir: dir}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save writes the artifact and returns its path. Existing files are replaced.
func (s *Sink) Save(ctx context.Context, artifact sink.Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := artifact.Validate(); err != nil {
		return "", err
	}

	dir := s.dir
	if s.perRunDir {
		dir = filepath.Join(dir, filepath.Base(artifact.RunID))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("filesink: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, artifact.Kind.FileName())
	if err := os.WriteFile(path, artifact.Content, 0o644); err != nil {
		return "", fmt.Errorf("filesink: write %s: %w", path, err)
	}

	return path, nil
}
