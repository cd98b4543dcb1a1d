// Package observability defines the interfaces and semantic conventions used
// for tracing and structured logging throughout the docsift library.
//
// The central entry point is [Provider], which composes [Tracer] and [Logger]
// into a single injectable dependency. Callers propagate an active [Provider]
// and [Span] through a [context.Context] using [ContextWithObserver] and
// [ContextWithSpan]; they can be retrieved with [ObserverFromContext] and
// [SpanFromContext]. Components treat a missing observer or span as "emit
// nothing", so instrumentation never becomes a hard dependency.
//
// The semconv.go file contains the standard attribute-key constants that
// should be used when recording observations, ensuring consistency across
// providers and extraction components.
package observability
