package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- LLM Provider Attributes ---

const (
	// AttrLLMProvider is the name of the LLM provider (e.g., "openai", "anthropic")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier (e.g., "gpt-4-turbo-preview")
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMResponseID is the unique response identifier from the provider
	AttrLLMResponseID = "llm.response.id"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMTemperature is the sampling temperature used
	AttrLLMTemperature = "llm.temperature"

	// AttrLLMMaxTokens is the output-length budget for the completion
	AttrLLMMaxTokens = "llm.max_tokens" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrLLMTokensTotal is the total number of tokens consumed
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- Extraction Attributes ---

const (
	// AttrExtractionOperation names the extraction operation being performed
	// (e.g., "structured", "entities", "sentiment", "line_items")
	AttrExtractionOperation = "extraction.operation"

	// AttrExtractionInputSize is the length in bytes of the source text
	AttrExtractionInputSize = "extraction.input_size"

	// AttrRecoveryStrategy records which recovery step produced the payload
	// ("direct", "json_fence", "any_fence")
	AttrRecoveryStrategy = "recovery.strategy"

	// AttrRecoveryFailed is true when all recovery strategies failed
	AttrRecoveryFailed = "recovery.failed"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method
	AttrHTTPMethod = "http.method"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPStatusCode is the response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body_size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body_size"
)

// --- Status Attributes ---

const (
	// AttrStatus is the span status ("ok", "error", "unset")
	AttrStatus = "status"

	// AttrStatusDescription is a human-readable status description
	AttrStatusDescription = "status.description"
)

// --- Standard Event Names ---

const (
	// EventLLMRequestStart marks the start of an LLM provider request
	EventLLMRequestStart = "llm.request.start"

	// EventLLMRequestEnd marks the end of an LLM provider request
	EventLLMRequestEnd = "llm.request.end"

	// EventRecoveryFallback marks a recovery step falling through to the next strategy
	EventRecoveryFallback = "recovery.fallback"
)
