// Package schema declares the shape descriptions embedded in extraction
// prompts. A [Descriptor] is a small tagged-variant tree — primitive, object,
// or array-of — built with the [String], [Number], [Bool], [Object], and
// [Array] constructors and rendered into a JSON-literal shape with
// [Descriptor.Render].
//
// Descriptors are documentation for the model, nothing more: the rendered
// shape steers the completion's output format, but responses are never
// validated against it. Field names must be unique within a nesting level and
// a descriptor is immutable once constructed.
package schema
