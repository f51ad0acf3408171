package client

import (
	"strings"

	"github.com/leofalp/llmreport/core/extract"
)

// reportFormatInstructions asks the model to delimit its JSON report with the
// markers the extractor looks for first.
var reportFormatInstructions = strings.Join([]string{
	"---",
	"",
	"Output format:",
	"Return the report as a single JSON object placed between the following markers, with no other text between them:",
	extract.StartMarker,
	"{report JSON}",
	extract.EndMarker,
}, "\n")

// buildPrompt returns the user message text.
func buildPrompt(prompt string, reportMarkers bool) string {
	if !reportMarkers {
		return prompt
	}
	return strings.TrimRight(prompt, "\n") + "\n\n" + reportFormatInstructions
}
