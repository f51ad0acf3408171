package slogobs

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
	}{
		{"text lowercase", "text", FormatText},
		{"text uppercase", "TEXT", FormatText},
		{"json lowercase", "json", FormatJSON},
		{"json uppercase", "JSON", FormatJSON},
		{"json padded", "  json ", FormatJSON},
		{"unknown defaults to text", "pretty", FormatText},
		{"empty defaults to text", "", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseFormat(tt.input)
			if result != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetFormatFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		appLogFormat string
		logFormat    string
		expected     Format
	}{
		{
			name:         "LLMREPORT_LOG_FORMAT takes precedence",
			appLogFormat: "json",
			logFormat:    "text",
			expected:     FormatJSON,
		},
		{
			name:      "fallback to LOG_FORMAT",
			logFormat: "json",
			expected:  FormatJSON,
		},
		{
			name:     "default to text when neither set",
			expected: FormatText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LLMREPORT_LOG_FORMAT", tt.appLogFormat)
			t.Setenv("LOG_FORMAT", tt.logFormat)

			result := GetFormatFromEnv()
			if result != tt.expected {
				t.Errorf("GetFormatFromEnv() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	if got := FormatJSON.String(); got != "json" {
		t.Errorf("FormatJSON.String() = %q, want %q", got, "json")
	}
	if got := FormatText.String(); got != "text" {
		t.Errorf("FormatText.String() = %q, want %q", got, "text")
	}
}
