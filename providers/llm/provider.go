package llm

import (
	"context"
	"net/http"
)

// Provider is the core interface that every completion backend implementation
// must satisfy. It covers the full lifecycle of a single request:
// authentication, endpoint configuration, dispatch, and response
// interpretation. All calls are synchronous and blocking; there is no
// streaming, batching, or concurrent fan-out at this layer.
type Provider interface {
	// Complete sends a completion request to the provider and returns the
	// full response. Returns an error if the provider call fails, the
	// context is cancelled, or the response cannot be decoded. Errors are
	// surfaced unchanged to the caller and never retried here.
	Complete(ctx context.Context, request CompletionRequest) (*CompletionResponse, error)

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHTTPClient sets the HTTP client used for outbound requests.
	WithHTTPClient(httpClient *http.Client) Provider
}
