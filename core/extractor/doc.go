// Package extractor turns unstructured natural-language text into structured
// data by way of a text-completion backend. An [Extractor] owns exactly one
// [llm.Provider] plus its sampling configuration — there is no process-wide
// state, and two extractors never share anything.
//
// The central operation is [Extractor.ExtractStructured], which renders a
// schema.Descriptor into the prompt, issues a single blocking completion
// call, and recovers the response through the core/recovery pipeline. The
// remaining operations (entities, sentiment, summary, classification, key
// information) are thin prompt variants over the same backend call and the
// same recovery path.
//
// The extractor never retries: a backend failure propagates unchanged to the
// caller, and an unrecoverable response surfaces as a sentinel record (or the
// documented empty-shape fallback), never as a panic or a thrown error.
// Callers that want retry or timeout policy wrap their provider with the
// providers/llm/middleware package before constructing the extractor.
package extractor
