// Package parse converts loosely formatted text into typed values.
//
// [ParseStringAs] turns configuration strings and report fields into Go
// primitives or JSON-shaped types, tolerating the schema-style
// {"type": ..., "value": ...} wrappers models sometimes emit. [Salvage] runs
// a general-purpose JSON repair over a candidate that strict extraction
// rejected; its output is diagnostic only and never replaces a strict result.
package parse
