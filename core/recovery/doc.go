// Package recovery extracts structured data from raw LLM text output.
// Because language models frequently wrap JSON in narrative prose or markdown
// code fences, this package applies an ordered fallback strategy — the whole
// response, then the first ```json fence, then the first untagged fence —
// trying each candidate with automatic JSON repair before giving up.
//
// The generic entry point is [ParseAs], which reports failure as a normal Go
// error. [AsRecord] and [AsList] wrap it with the data-shaped contracts the
// extraction layer relies on: AsRecord converts an unrecoverable response
// into a sentinel error record instead of an error, and AsList falls back to
// an empty slice, so batch callers never need per-document error handling.
package recovery
