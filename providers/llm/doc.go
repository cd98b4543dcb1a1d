// Package llm defines the provider-agnostic types and interfaces used across
// all text-completion backend implementations (OpenAI, Anthropic, ...). Each
// provider's conversion layer is responsible for mapping these types to its
// own wire format, keeping the rest of the codebase decoupled from
// provider-specific details.
//
// The central interface is [Provider], a single blocking completion call:
// prompt in, text out. Request data flows through [CompletionRequest] and
// responses are returned as [CompletionResponse]. Provider failures are plain
// Go errors and are never retried at this layer; see the middleware
// subpackage for caller-side retry, timeout, and logging policy.
package llm
