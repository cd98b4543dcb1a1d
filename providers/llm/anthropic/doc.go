// Package anthropic implements the llm.Provider interface on top of
// Anthropic's Messages API. The conversion layer in models.go maps the
// generic [llm.CompletionRequest] to the Messages wire format (system field
// plus a single user message) and concatenates returned text blocks back into
// [llm.CompletionResponse].
//
// Use [New] to construct an instance initialized from ANTHROPIC_API_KEY and
// ANTHROPIC_API_BASE_URL, then override with the With* builder methods as
// needed. Anthropic authenticates via the x-api-key header rather than a
// Bearer token, and requires an explicit max_tokens on every request.
package anthropic
