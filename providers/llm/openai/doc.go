// Package openai implements the llm.Provider interface on top of OpenAI's
// Chat Completions API. The conversion layer in models.go maps the generic
// [llm.CompletionRequest] to the chat wire format (system + user message) and
// the first returned choice back to [llm.CompletionResponse].
//
// Use [New] to construct an instance initialized from OPENAI_API_KEY and
// OPENAI_API_BASE_URL, then override with the With* builder methods as needed.
package openai
