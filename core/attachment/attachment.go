package attachment

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/llmreport/providers/ai"
)

// ErrDirNotFound is returned when the attachments directory does not exist.
var ErrDirNotFound = errors.New("attachment: directory not found")

// FileStatus describes one expected file in an attachments directory.
type FileStatus struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// LoadFile reads path and classifies it by extension.
func LoadFile(path string) (ai.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ai.Attachment{}, fmt.Errorf("read attachment %s: %w", path, err)
	}

	a := ai.Attachment{
		Name:      filepath.Base(path),
		MediaType: ai.MediaTypeText,
		Content:   string(data),
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if json.Valid(data) {
			a.MediaType = ai.MediaTypeJSON
		}
	case ".html", ".htm":
		markdown, err := htmltomarkdown.ConvertString(string(data))
		if err != nil {
			return ai.Attachment{}, fmt.Errorf("convert %s to markdown: %w", path, err)
		}
		a.Content = markdown
	}

	return a, nil
}

// ValidateDir checks that dir exists and reports which of the expected file
// names are present. With no expected names, every regular file in dir is
// listed as present.
func ValidateDir(dir string, expected []string) ([]FileStatus, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirNotFound, dir)
	}

	if len(expected) == 0 {
		return listDir(dir)
	}

	statuses := make([]FileStatus, 0, len(expected))
	for _, name := range expected {
		path := filepath.Join(dir, name)
		fi, err := os.Stat(path)
		statuses = append(statuses, FileStatus{
			Name:   name,
			Path:   path,
			Exists: err == nil && fi.Mode().IsRegular(),
		})
	}
	return statuses, nil
}

func listDir(dir string) ([]FileStatus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var statuses []FileStatus
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		statuses = append(statuses, FileStatus{
			Name:   e.Name(),
			Path:   filepath.Join(dir, e.Name()),
			Exists: true,
		})
	}
	return statuses, nil
}

// LoadDir validates dir and loads every present file. Missing files are
// logged and skipped. A file that exists but cannot be read fails the call.
// A nil logger means slog.Default().
func LoadDir(dir string, expected []string, logger *slog.Logger) ([]ai.Attachment, []FileStatus, error) {
	if logger == nil {
		logger = slog.Default()
	}

	statuses, err := ValidateDir(dir, expected)
	if err != nil {
		return nil, nil, err
	}

	attachments := make([]ai.Attachment, 0, len(statuses))
	for _, s := range statuses {
		if !s.Exists {
			logger.Warn("skipping missing attachment", slog.String("file", s.Name), slog.String("dir", dir))
			continue
		}

		a, err := LoadFile(s.Path)
		if err != nil {
			return nil, statuses, err
		}
		logger.Debug("loaded attachment",
			slog.String("file", a.Name),
			slog.String("media_type", string(a.MediaType)),
			slog.Int("bytes", len(a.Content)),
		)
		attachments = append(attachments, a)
	}

	return attachments, statuses, nil
}
