package extract

import "errors"

// Method identifies the strategy that produced an extraction result.
type Method string

const (
	MethodMarkers         Method = "markers"           // JSON_REPORT_START / JSON_REPORT_END sentinels
	MethodFencedCodeBlock Method = "fenced_code_block" // ```json or bare ``` fence
	MethodBraceScan       Method = "brace_scan"        // first '{' through last '}'
	MethodNone            Method = "none"              // nothing parsed
)

// String returns the wire tag of the method.
func (m Method) String() string {
	return string(m)
}

var (
	// ErrMalformedJSON is wrapped by Result.Err when at least one candidate
	// was found but none decoded to a JSON object, even after the one-shot
	// known-defect repair.
	ErrMalformedJSON = errors.New("extract: malformed JSON")

	// ErrNoCandidate is wrapped by Result.Err when no markers, fences or
	// braces were found in the response at all.
	ErrNoCandidate = errors.New("extract: no JSON candidate found in response")
)

// Result is the outcome of a single call to [Extract].
type Result struct {
	// Succeeded reports whether Document holds a parsed JSON object.
	Succeeded bool `json:"succeeded"`

	// Method is the strategy whose candidate was parsed, or MethodNone.
	Method Method `json:"method"`

	// Document is the parsed JSON object. Nil unless Succeeded.
	Document map[string]any `json:"document,omitempty"`

	// RawSlice is the exact substring handed to the JSON decoder. On failure
	// it holds the best candidate that was tried, for diagnostics.
	RawSlice string `json:"raw_slice,omitempty"`

	// Repaired is true when Document was only obtained after applying the
	// known-defect array-close patch to RawSlice.
	Repaired bool `json:"repaired,omitempty"`

	// Err describes the failure. Nil when Succeeded. It wraps either
	// ErrMalformedJSON or ErrNoCandidate.
	Err error `json:"-"`
}

// ErrorMessage returns Err as text, or an empty string on success.
func (r Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
