package middleware

import (
	"context"
	"time"

	"github.com/docsift/docsift/providers/llm"
)

// NewTimeout creates a [Middleware] that enforces a per-request deadline on
// provider calls. The implementation wraps the context with
// context.WithTimeout and defers cancel() — the context is automatically
// canceled once the provider returns or the deadline expires.
//
// If the caller supplies a context that already has a shorter deadline, that
// shorter deadline wins as per normal context semantics.
func NewTimeout(timeout time.Duration) Middleware {
	return func(next CompleteFunc) CompleteFunc {
		return func(ctx context.Context, request llm.CompletionRequest) (*llm.CompletionResponse, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, request)
		}
	}
}
