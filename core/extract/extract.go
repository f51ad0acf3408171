package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// StartMarker and EndMarker bound the report payload when the prompt asks
	// the model to emit them. Matching is exact and case-sensitive.
	StartMarker = "JSON_REPORT_START"
	EndMarker   = "JSON_REPORT_END"

	jsonFence = "```json"
	bareFence = "```"
)

// errNotObject is returned by decodeObject for JSON values that are valid but
// are not objects (arrays, scalars, null).
var errNotObject = errors.New("JSON value is not an object")

// locator finds a candidate substring in the raw response. The boolean is
// false when the strategy does not apply to the input.
type locator func(raw string) (string, bool)

type strategy struct {
	method Method
	locate locator
}

// strategies is evaluated in order; the first candidate that decodes wins.
// Markers are the most deliberate signal, a bare brace pair the least.
var strategies = []strategy{
	{method: MethodMarkers, locate: locateMarkers},
	{method: MethodFencedCodeBlock, locate: locateFence},
	{method: MethodBraceScan, locate: locateBraces},
}

// attempt records a candidate that was located but failed to decode.
type attempt struct {
	method Method
	slice  string
	err    error
}

// Extract returns the single JSON object embedded in raw, trying marker
// delimited text, then a fenced code block, then the outermost brace pair.
//
// When every located candidate fails to decode, candidates containing the
// known array-close defect (see repairKnownArrayClose) are patched and
// decoded once more, in the same order. Extract never panics and has no side effects; the same input
// always produces the same Result.
func Extract(raw string) Result {
	attempts := make([]attempt, 0, len(strategies))

	for _, s := range strategies {
		candidate, ok := s.locate(raw)
		if !ok {
			continue
		}

		document, err := decodeObject(candidate)
		if err == nil {
			return Result{
				Succeeded: true,
				Method:    s.method,
				Document:  document,
				RawSlice:  candidate,
			}
		}

		attempts = append(attempts, attempt{method: s.method, slice: candidate, err: err})
	}

	if len(attempts) == 0 {
		return Result{Method: MethodNone, Err: ErrNoCandidate}
	}

	if result, ok := retryWithRepair(attempts); ok {
		return result
	}

	return Result{
		Method:   MethodNone,
		RawSlice: bestSlice(attempts),
		Err:      fmt.Errorf("%w: %w", ErrMalformedJSON, preferredError(attempts)),
	}
}

// retryWithRepair applies the known-defect patch to each failed candidate
// that contains it, in strategy order, and returns the first patched text
// that decodes. Each candidate is patched at most once.
func retryWithRepair(attempts []attempt) (Result, bool) {
	for _, a := range attempts {
		patched, ok := repairKnownArrayClose(a.slice)
		if !ok {
			continue
		}

		document, err := decodeObject(patched)
		if err != nil {
			continue
		}

		return Result{
			Succeeded: true,
			Method:    a.method,
			Document:  document,
			RawSlice:  a.slice,
			Repaired:  true,
		}, true
	}

	return Result{}, false
}

// locateMarkers returns the trimmed text strictly between StartMarker and the
// first EndMarker that follows it. An empty body is not a candidate.
func locateMarkers(raw string) (string, bool) {
	start := strings.Index(raw, StartMarker)
	if start < 0 {
		return "", false
	}

	bodyStart := start + len(StartMarker)
	end := strings.Index(raw[bodyStart:], EndMarker)
	if end < 0 {
		return "", false
	}

	body := strings.TrimSpace(raw[bodyStart : bodyStart+end])
	return body, body != ""
}

// locateFence returns the body of the first ```json fence, or of the first
// bare ``` fence when no json fence exists. An unclosed fence yields the rest
// of the text, which tolerates truncated model output.
func locateFence(raw string) (string, bool) {
	opener := jsonFence
	start := strings.Index(raw, jsonFence)
	if start < 0 {
		opener = bareFence
		start = strings.Index(raw, bareFence)
	}
	if start < 0 {
		return "", false
	}

	body := raw[start+len(opener):]
	if end := strings.Index(body, bareFence); end >= 0 {
		body = body[:end]
	}

	return strings.TrimSpace(body), true
}

// locateBraces returns the inclusive span from the first '{' to the last '}'.
func locateBraces(raw string) (string, bool) {
	first := strings.IndexByte(raw, '{')
	last := strings.LastIndexByte(raw, '}')
	if first < 0 || last <= first {
		return "", false
	}

	return strings.TrimSpace(raw[first : last+1]), true
}

// decodeObject parses candidate as a JSON object.
func decodeObject(candidate string) (map[string]any, error) {
	var document map[string]any
	if err := json.Unmarshal([]byte(candidate), &document); err != nil {
		return nil, err
	}
	if document == nil {
		return nil, errNotObject
	}
	return document, nil
}

// bestSlice prefers the marker-delimited candidate, even unparsed, since the
// model was explicitly asked to put the report there.
func bestSlice(attempts []attempt) string {
	for _, a := range attempts {
		if a.method == MethodMarkers {
			return a.slice
		}
	}
	return attempts[len(attempts)-1].slice
}

// preferredError reports the brace-scan error when that strategy ran, since it
// covers the widest span of the response, and the last error otherwise.
func preferredError(attempts []attempt) error {
	for _, a := range attempts {
		if a.method == MethodBraceScan {
			return a.err
		}
	}
	return attempts[len(attempts)-1].err
}
