// Package slogobs provides an observability.Provider implementation backed by
// Go's standard library log/slog package. Spans are rendered as paired
// start/end log records carrying their accumulated attributes, and logger
// calls map directly to slog levels (Trace maps below Debug so it is filtered
// out unless explicitly enabled).
//
// The main entry point is [New]; pass nil to use slog.Default().
package slogobs
