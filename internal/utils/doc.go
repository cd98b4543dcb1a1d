// Package utils provides shared low-level helpers used throughout the
// docsift internals. It covers the synchronous JSON-over-HTTP helper used by
// the LLM provider implementations and small string utilities for log-safe
// output.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips and
// [TruncateString] for bounding text included in errors and log records.
package utils
