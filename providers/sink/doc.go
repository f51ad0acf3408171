// Package sink defines where report artifacts go once a response has been
// processed. An [Artifact] is one file-like output of a run (the raw
// response, the extracted document, the text fallback or a salvage
// attempt); a [Sink] persists it and returns a location string for the
// outcome record.
//
// Implementations live in subpackages: filesink (local directory), s3sink
// (S3-compatible object storage) and pgsink (PostgreSQL). [Multi] fans one
// artifact out to several sinks.
package sink
