package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultMaxStringLength is the preview length used when none is given.
const DefaultMaxStringLength = 500

// TruncateString shortens s to at most maxLen bytes and appends the original
// length so readers know data was omitted. A non-positive maxLen means
// DefaultMaxStringLength.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}

// MarshalIndentNoEscape encodes v with the given indent and without escaping
// '<', '>' and '&'. Non-ASCII text is written as UTF-8. The trailing newline
// added by json.Encoder is removed.
func MarshalIndentNoEscape(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// FirstNonEmpty returns the first argument that is not blank after trimming.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
