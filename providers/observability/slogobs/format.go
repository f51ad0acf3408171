package slogobs

import (
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatText is logfmt-style key=value output (default).
	// Example: time=2026-10-19T10:40:35Z level=INFO msg="report saved" run_id=...
	FormatText Format = "text"

	// FormatJSON is one JSON object per line, for log aggregation.
	// Example: {"time":"2026-10-19T10:40:35Z","level":"INFO","msg":"report saved"}
	FormatJSON Format = "json"
)

// ParseFormat parses a format string and returns the corresponding Format.
// Unknown values fall back to FormatText.
func ParseFormat(s string) Format {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// GetFormatFromEnv retrieves the log format from environment variables.
// It checks LLMREPORT_LOG_FORMAT first, then falls back to LOG_FORMAT.
func GetFormatFromEnv() Format {
	if format := os.Getenv("LLMREPORT_LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	return FormatText
}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}
