package utils

import (
	"strings"
	"testing"
)

// TestTruncateString covers short input, exact length, truncation and the
// default length fallback.
func TestTruncateString(t *testing.T) {
	long := strings.Repeat("x", DefaultMaxStringLength+10)

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "shorter than limit", input: "abc", maxLen: 10, want: "abc"},
		{name: "exact limit", input: "abcde", maxLen: 5, want: "abcde"},
		{name: "truncated", input: "abcdefgh", maxLen: 3, want: "abc... (truncated, total: 8 chars)"},
		{
			name:   "zero uses default",
			input:  long,
			maxLen: 0,
			want:   long[:DefaultMaxStringLength] + "... (truncated, total: 510 chars)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestMarshalIndentNoEscape verifies four-space indentation, literal UTF-8 and
// unescaped HTML characters.
func TestMarshalIndentNoEscape(t *testing.T) {
	got, err := MarshalIndentNoEscape(map[string]string{"note": "Müller <b>&</b>"}, "    ")
	if err != nil {
		t.Fatalf("MarshalIndentNoEscape() error = %v", err)
	}

	want := "{\n    \"note\": \"Müller <b>&</b>\"\n}"
	if string(got) != want {
		t.Errorf("MarshalIndentNoEscape() = %q, want %q", got, want)
	}
}

// TestMarshalIndentNoEscape_Error verifies that unsupported values fail.
func TestMarshalIndentNoEscape_Error(t *testing.T) {
	if _, err := MarshalIndentNoEscape(make(chan int), "  "); err == nil {
		t.Error("expected error for channel value")
	}
}

// TestFirstNonEmpty verifies that blank values are skipped.
func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "b", "c"); got != "b" {
		t.Errorf("FirstNonEmpty() = %q, want %q", got, "b")
	}
	if got := FirstNonEmpty("", " "); got != "" {
		t.Errorf("FirstNonEmpty() = %q, want empty", got)
	}
}

// TestPtr verifies that Ptr returns an independent copy.
func TestPtr(t *testing.T) {
	v := 0.7
	p := Ptr(v)
	v = 1
	if *p != 0.7 {
		t.Errorf("*Ptr() = %v, want 0.7", *p)
	}
}
