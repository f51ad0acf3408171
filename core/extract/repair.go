package extract

import "strings"

// knownDefectFragment is the exact text of one malformed report the deployment
// produced: the last entry of "timeline_of_events" followed by '}' where the
// array needed ']'. It is matched literally, including the indentation.
const (
	knownDefectFragment    = "\"2024-05-15: Surgery scheduled after patient consent. *(Source: Document 4, Page 579)*\"\n    }"
	knownDefectReplacement = "\"2024-05-15: Surgery scheduled after patient consent. *(Source: Document 4, Page 579)*\"\n    ]"
)

// repairKnownArrayClose swaps the closing '}' of the first occurrence of the
// known defect for ']'. It reports false, and returns candidate unchanged,
// when the fragment is absent. No other malformation is touched.
//
// TODO: confirm with the report owners whether other timeline entries can be
// hit by the same array-close defect before widening the match.
func repairKnownArrayClose(candidate string) (string, bool) {
	if !strings.Contains(candidate, knownDefectFragment) {
		return candidate, false
	}
	return strings.Replace(candidate, knownDefectFragment, knownDefectReplacement, 1), true
}
