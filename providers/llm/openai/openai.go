package openai

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
	// defaultBaseURL is the canonical base URL for OpenAI's API.
	defaultBaseURL = "https://api.openai.com/v1"

	// chatCompletionsEndpoint is the path for the Chat Completions endpoint.
	chatCompletionsEndpoint = "/chat/completions"
)

// OpenAIProvider implements [llm.Provider] for OpenAI's Chat Completions API.
// Use [New] to construct a ready-to-use instance.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns an [OpenAIProvider] initialized from environment variables.
// It reads OPENAI_API_KEY for authentication and OPENAI_API_BASE_URL for the
// endpoint base (defaulting to https://api.openai.com/v1 when unset). Use
// [OpenAIProvider.WithAPIKey] and [OpenAIProvider.WithBaseURL] to override
// these values after construction.
func New() *OpenAIProvider {
	apiKey := os.Getenv("OPENAI_API_KEY")
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key used for authenticating requests and returns
// the provider so calls can be chained. It overrides the value read from
// OPENAI_API_KEY.
func (p *OpenAIProvider) WithAPIKey(apiKey string) llm.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL overrides the API base URL and returns the provider so calls
// can be chained. Use this when targeting a proxy, an OpenAI-compatible
// gateway, or a local testing endpoint.
func (p *OpenAIProvider) WithBaseURL(baseURL string) llm.Provider {
	p.baseURL = baseURL
	return p
}

// WithHTTPClient replaces the default [http.Client] used for API calls and
// returns the provider so calls can be chained. Useful for injecting custom
// timeouts, transport layers, or test doubles.
func (p *OpenAIProvider) WithHTTPClient(httpClient *http.Client) llm.Provider {
	p.client = httpClient
	return p
}

// Complete implements [llm.Provider] by sending a synchronous request to the
// Chat Completions endpoint and returning the first choice mapped to the
// generic [llm.CompletionResponse] format. It returns an error if the API key
// is unset, the HTTP request fails, or the response contains no choices.
func (p *OpenAIProvider) Complete(ctx context.Context, request llm.CompletionRequest) (*llm.CompletionResponse, error) {
	// Enrich span if observability is wired into the context.
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventLLMRequestStart)
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, "openai"),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
		)
		defer span.AddEvent(observability.EventLLMRequestEnd)
	}

	if observer != nil {
		observer.Trace(ctx, "OpenAI provider preparing request",
			observability.String(observability.AttrLLMProvider, "openai"),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
			observability.Float64(observability.AttrLLMTemperature, request.Temperature),
			observability.Int(observability.AttrLLMMaxTokens, request.MaxTokens),
		)
	}

	// Guard against missing credentials before making a network call.
	if p.apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	url := p.baseURL + chatCompletionsEndpoint

	httpResponse, resp, err := utils.DoPostSync[chatResponse](
		ctx,
		p.client,
		url,
		p.apiKey,
		requestFromGeneric(request),
	)
	if err != nil {
		if observer != nil {
			observer.Trace(ctx, "HTTP request failed", observability.Error(err))
		}
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from OpenAI API: %s", httpResponse.Status)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in OpenAI response")
	}

	result := responseToGeneric(*resp)

	// Some compatible gateways omit the model name; fall back to the request
	// model so callers always have a non-empty Model field.
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
