package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/leofalp/llmreport/core/parse"
)

// Summary holds the few report fields shown after a run.
type Summary struct {
	PatientName   string `json:"patient_name,omitempty"`
	StudyDate     string `json:"study_date,omitempty"`
	DocumentCount int    `json:"document_count"`
}

// Summarize reads the patient name, study date and matched-document count
// from a correlation report. Both the legacy {"correlation_report": {...}}
// envelope and the flat layout are understood; keys match case-insensitively.
// Missing fields are left empty.
func Summarize(document map[string]any) Summary {
	root := document
	if inner, ok := lookupMap(document, "correlation_report"); ok {
		root = inner
	}

	var s Summary

	if patient, ok := lookupMap(root, "patient_information"); ok {
		s.PatientName = stringValue(lookup(patient, "name"))
	}
	if s.PatientName == "" {
		s.PatientName = stringValue(lookup(root, "patient_name"))
	}

	for _, section := range []string{"dicom_study", "case_info"} {
		if m, ok := lookupMap(root, section); ok {
			if s.StudyDate = stringValue(lookup(m, "study_date")); s.StudyDate != "" {
				break
			}
		}
	}

	s.DocumentCount = countDocuments(root)
	return s
}

func countDocuments(root map[string]any) int {
	if matched := lookup(root, "matched_pdf_documents"); matched != nil {
		switch v := matched.(type) {
		case []any:
			return len(v)
		case map[string]any:
			return listLen(lookup(v, "keyword_search")) + listLen(lookup(v, "vector_search"))
		}
	}

	return listLen(lookup(root, "keyword_search_results")) + listLen(lookup(root, "vector_search_results"))
}

// listLen counts a list, or the documents list inside a section object.
func listLen(v any) int {
	switch t := v.(type) {
	case []any:
		return len(t)
	case map[string]any:
		if docs, ok := lookup(t, "documents").([]any); ok {
			return len(docs)
		}
	}
	return 0
}

// lookup returns m[key], falling back to a case-insensitive match.
func lookup(m map[string]any, key string) any {
	if m == nil {
		return nil
	}
	if v, ok := m[key]; ok {
		return v
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return nil
}

func lookupMap(m map[string]any, key string) (map[string]any, bool) {
	inner, ok := lookup(m, key).(map[string]any)
	return inner, ok
}

// stringValue renders a scalar field. Schema-style {"type", "value"}
// wrappers are unwrapped.
func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		s, err := parse.ParseStringAs[string](string(b))
		if err != nil || s == string(b) {
			return ""
		}
		return strings.TrimSpace(s)
	default:
		return fmt.Sprint(t)
	}
}
