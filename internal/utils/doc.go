// Package utils holds small helpers shared by the provider and sink
// implementations: a synchronous JSON POST helper, string truncation for log
// previews and JSON encoding that leaves non-ASCII and HTML characters intact.
package utils
