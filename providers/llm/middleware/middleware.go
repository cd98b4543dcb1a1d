package middleware

import (
	"context"
	"net/http"

	"github.com/docsift/docsift/providers/llm"
)

// CompleteFunc is the function signature wrapped by middleware: a single
// synchronous completion call.
type CompleteFunc func(ctx context.Context, request llm.CompletionRequest) (*llm.CompletionResponse, error)

// Middleware wraps a CompleteFunc with additional behavior. Implementations
// must call next to continue the chain unless they intentionally short-circuit
// (e.g. a cache hit or an exhausted retry budget).
type Middleware func(next CompleteFunc) CompleteFunc

// Wrap returns an [llm.Provider] whose Complete method runs the given
// middlewares around provider.Complete. Middlewares execute outermost-first:
// the first element of mws runs first on the way in and last on the way out.
//
// The builder methods (WithAPIKey, WithBaseURL, WithHTTPClient) delegate to
// the underlying provider so a wrapped provider can still be reconfigured.
func Wrap(provider llm.Provider, mws ...Middleware) llm.Provider {
	chain := provider.Complete
	for i := len(mws) - 1; i >= 0; i-- {
		chain = mws[i](chain)
	}

	return &wrappedProvider{inner: provider, chain: chain}
}

// wrappedProvider is the llm.Provider returned by [Wrap].
type wrappedProvider struct {
	inner llm.Provider
	chain CompleteFunc
}

func (w *wrappedProvider) Complete(ctx context.Context, request llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return w.chain(ctx, request)
}

func (w *wrappedProvider) WithAPIKey(apiKey string) llm.Provider {
	w.inner = w.inner.WithAPIKey(apiKey)
	return w
}

func (w *wrappedProvider) WithBaseURL(baseURL string) llm.Provider {
	w.inner = w.inner.WithBaseURL(baseURL)
	return w
}

func (w *wrappedProvider) WithHTTPClient(httpClient *http.Client) llm.Provider {
	w.inner = w.inner.WithHTTPClient(httpClient)
	return w
}
