package slogobs

import (
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
		ok       bool
	}{
		{"Debug uppercase", "DEBUG", slog.LevelDebug, true},
		{"Debug mixed case", "DeBuG", slog.LevelDebug, true},
		{"Info lowercase", "info", slog.LevelInfo, true},
		{"Warn uppercase", "WARN", slog.LevelWarn, true},
		{"Warning lowercase", "warning", slog.LevelWarn, true},
		{"Error lowercase", "error", slog.LevelError, true},
		{"With whitespace", "  DEBUG  ", slog.LevelDebug, true},
		{"Unknown value", "UNKNOWN", slog.LevelInfo, false},
		{"Empty string", "", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ParseLogLevel(tt.input)
			if result != tt.expected || ok != tt.ok {
				t.Errorf("ParseLogLevel(%q) = (%v, %v), want (%v, %v)", tt.input, result, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestGetLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		appLogLevel string
		logLevel    string
		expected    slog.Level
	}{
		{"LLMREPORT_LOG_LEVEL takes precedence", "ERROR", "DEBUG", slog.LevelError},
		{"fallback to LOG_LEVEL", "", "WARN", slog.LevelWarn},
		{"default to INFO", "", "", slog.LevelInfo},
		{"unknown value is INFO", "LOUD", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LLMREPORT_LOG_LEVEL", tt.appLogLevel)
			t.Setenv("LOG_LEVEL", tt.logLevel)

			if got := GetLogLevelFromEnv(); got != tt.expected {
				t.Errorf("GetLogLevelFromEnv() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelInfo, "INFO"},
		{slog.LevelWarn, "WARN"},
		{slog.LevelError, "ERROR"},
		{slog.Level(2), "LEVEL(2)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := LogLevelString(tt.level); got != tt.expected {
				t.Errorf("LogLevelString(%v) = %q, want %q", tt.level, got, tt.expected)
			}
		})
	}
}
