package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/docsift/docsift/internal/utils"
	"github.com/docsift/docsift/providers/llm"
	"github.com/docsift/docsift/providers/observability"
)

const (
	// defaultBaseURL is the canonical base URL for Anthropic's Messages API.
	defaultBaseURL = "https://api.anthropic.com/v1"

	// messagesEndpoint is the path for the Messages API endpoint.
	messagesEndpoint = "/messages"

	// anthropicVersion is the required anthropic-version header value.
	// Anthropic uses this to version-lock response formats independently of the URL.
	anthropicVersion = "2023-06-01"
)

// AnthropicProvider implements [llm.Provider] for Anthropic's Messages API.
// Use [New] to construct a ready-to-use instance.
type AnthropicProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns an [AnthropicProvider] initialized from environment variables.
// It reads ANTHROPIC_API_KEY for authentication and ANTHROPIC_API_BASE_URL
// for the endpoint base (defaulting to https://api.anthropic.com/v1 when
// unset). Use [AnthropicProvider.WithAPIKey] and
// [AnthropicProvider.WithBaseURL] to override these values after construction.
func New() *AnthropicProvider {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	baseURL := os.Getenv("ANTHROPIC_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key used for authenticating requests and returns
// the provider so calls can be chained. It overrides the value read from
// ANTHROPIC_API_KEY.
func (p *AnthropicProvider) WithAPIKey(apiKey string) llm.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL overrides the API base URL and returns the provider so calls
// can be chained. Use this when targeting a proxy or local testing endpoint.
func (p *AnthropicProvider) WithBaseURL(baseURL string) llm.Provider {
	p.baseURL = baseURL
	return p
}

// WithHTTPClient replaces the default [http.Client] used for API calls and
// returns the provider so calls can be chained. Useful for injecting custom
// timeouts, transport layers, or test doubles.
func (p *AnthropicProvider) WithHTTPClient(httpClient *http.Client) llm.Provider {
	p.client = httpClient
	return p
}

// buildHeaders constructs the HTTP headers required for every Anthropic
// request. x-api-key carries the credential (Anthropic does not use Bearer
// tokens) and anthropic-version pins the wire format.
func (p *AnthropicProvider) buildHeaders() []utils.HeaderOption {
	return []utils.HeaderOption{
		{Key: "x-api-key", Value: p.apiKey},
		{Key: "anthropic-version", Value: anthropicVersion},
	}
}

// Complete implements [llm.Provider] by sending a synchronous request to
// Anthropic's Messages API and returning the response mapped to the generic
// [llm.CompletionResponse] format. It returns an error if the API key is
// unset, the HTTP request fails, or the response body is empty.
func (p *AnthropicProvider) Complete(ctx context.Context, request llm.CompletionRequest) (*llm.CompletionResponse, error) {
	// Enrich span if observability is wired into the context.
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventLLMRequestStart)
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, "anthropic"),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
		)
		defer span.AddEvent(observability.EventLLMRequestEnd)
	}

	if observer != nil {
		observer.Trace(ctx, "Anthropic provider preparing request",
			observability.String(observability.AttrLLMProvider, "anthropic"),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
			observability.Float64(observability.AttrLLMTemperature, request.Temperature),
			observability.Int(observability.AttrLLMMaxTokens, request.MaxTokens),
		)
	}

	// Guard against missing credentials before making a network call.
	if p.apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
	}

	url := p.baseURL + messagesEndpoint

	// Pass empty apiKey so DoPostSync does not inject a Bearer token;
	// Anthropic authenticates via x-api-key instead.
	httpResponse, resp, err := utils.DoPostSync[anthropicResponse](
		ctx,
		p.client,
		url,
		"",
		requestToAnthropic(request),
		p.buildHeaders()...,
	)
	if err != nil {
		if observer != nil {
			observer.Trace(ctx, "HTTP request failed", observability.Error(err))
		}
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from Anthropic API: %s", httpResponse.Status)
	}

	result := anthropicToGeneric(*resp)

	// Anthropic usually echoes the model name in the response, but when it is
	// absent we fall back to the request model so callers always have a
	// non-empty Model field.
	if result.Model == "" {
		result.Model = request.Model
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrLLMResponseID, result.Id),
			observability.String(observability.AttrLLMFinishReason, result.FinishReason),
			observability.Int(observability.AttrHTTPStatusCode, httpResponse.StatusCode),
		)
		if result.Usage != nil {
			span.SetAttributes(
				observability.Int(observability.AttrLLMTokensTotal, result.Usage.TotalTokens),
			)
		}
	}

	return result, nil
}
