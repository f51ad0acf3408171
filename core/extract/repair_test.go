package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defectiveReport = "{\n" +
	"  \"timeline_of_events\": [\n" +
	"    \"2024-05-10: Initial consultation.\",\n" +
	"    \"2024-05-15: Surgery scheduled after patient consent. *(Source: Document 4, Page 579)*\"\n" +
	"    }\n" +
	"}"

// TestExtract_RepairsKnownDefect verifies that the array-close defect is
// patched and that the result is flagged as repaired.
func TestExtract_RepairsKnownDefect(t *testing.T) {
	got := Extract("Report follows.\n" + defectiveReport + "\nEnd of report.")

	require.True(t, got.Succeeded, "unexpected error: %v", got.Err)
	assert.Equal(t, MethodBraceScan, got.Method)
	assert.True(t, got.Repaired)
	assert.Equal(t, defectiveReport, got.RawSlice, "raw slice must be the unpatched candidate")

	timeline, ok := got.Document["timeline_of_events"].([]any)
	require.True(t, ok)
	assert.Len(t, timeline, 2)
}

// TestExtract_RepairKeepsMarkerMethod verifies that a repaired marker slice is
// reported under the markers strategy.
func TestExtract_RepairKeepsMarkerMethod(t *testing.T) {
	got := Extract(StartMarker + "\n" + defectiveReport + "\n" + EndMarker)

	require.True(t, got.Succeeded)
	assert.Equal(t, MethodMarkers, got.Method)
	assert.True(t, got.Repaired)
}

// TestExtract_RepairFallsThroughToLaterCandidate verifies that when the
// patched marker slice still fails because of prose around the object, the
// brace-scan candidate is patched and used instead.
func TestExtract_RepairFallsThroughToLaterCandidate(t *testing.T) {
	got := Extract(StartMarker + "\nHere is the report:\n" + defectiveReport + "\n" + EndMarker)

	require.True(t, got.Succeeded, "unexpected error: %v", got.Err)
	assert.Equal(t, MethodBraceScan, got.Method)
	assert.True(t, got.Repaired)
	assert.Equal(t, defectiveReport, got.RawSlice)

	timeline, ok := got.Document["timeline_of_events"].([]any)
	require.True(t, ok)
	assert.Len(t, timeline, 2)
}

// TestExtract_RepairIsNotGeneral verifies that malformations other than the
// exact known fragment are left alone.
func TestExtract_RepairIsNotGeneral(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "same shape different entry",
			input: "{\n  \"timeline_of_events\": [\n    \"2024-06-01: Follow-up visit.\"\n    }\n}",
		},
		{
			name:  "trailing comma",
			input: `{"a": 1,}`,
		},
		{
			name:  "fragment with different indentation",
			input: "{\"t\": [\"2024-05-15: Surgery scheduled after patient consent. *(Source: Document 4, Page 579)*\"\n  }\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input)

			assert.False(t, got.Succeeded)
			assert.False(t, got.Repaired)
			assert.ErrorIs(t, got.Err, ErrMalformedJSON)
		})
	}
}

// TestRepairKnownArrayClose verifies the literal substitution.
func TestRepairKnownArrayClose(t *testing.T) {
	patched, ok := repairKnownArrayClose(defectiveReport)
	require.True(t, ok)
	assert.Contains(t, patched, knownDefectReplacement)
	assert.NotContains(t, patched, knownDefectFragment)

	twice := knownDefectFragment + "\n" + knownDefectFragment
	patchedOnce, ok := repairKnownArrayClose(twice)
	require.True(t, ok)
	assert.Equal(t, knownDefectReplacement+"\n"+knownDefectFragment, patchedOnce, "only one substitution per candidate")

	unchanged, ok := repairKnownArrayClose(`{"a": 1}`)
	assert.False(t, ok)
	assert.Equal(t, `{"a": 1}`, unchanged)
}
