// Package slogobs builds the process-wide *slog.Logger.
//
// Output format and minimum level default to the LLMREPORT_LOG_FORMAT and
// LLMREPORT_LOG_LEVEL environment variables (falling back to LOG_FORMAT and
// LOG_LEVEL) and can be overridden with [WithFormat], [WithLevel] and
// [WithOutput].
package slogobs
