// Package middleware provides composable wrappers around an [llm.Provider].
// The extraction core deliberately carries no retry or timeout policy of its
// own; callers that need one wrap their provider here before handing it to an
// extractor.
//
// # Available Middleware
//
//   - [NewRetry]: Retries failed provider calls with exponential backoff and
//     jitter. Useful for transient HTTP 429 / 5xx errors.
//
//   - [NewTimeout]: Adds a per-request deadline via context.WithTimeout,
//     ensuring that a stalled provider call does not block the caller
//     indefinitely.
//
//   - [NewLogging]: Emits structured slog log entries before and after every
//     provider call, with three verbosity levels (Minimal, Standard, Verbose).
//
// # Usage
//
//	provider := middleware.Wrap(openai.New(),
//	    middleware.NewTimeout(30*time.Second),
//	    middleware.NewRetry(middleware.RetryConfig{MaxRetries: 3}),
//	    middleware.NewLogging(slog.Default(), middleware.LogLevelStandard),
//	)
//
// Middlewares execute outermost-first: the first entry passed to [Wrap] is the
// outermost wrapper, meaning it runs first on the way in and last on the way
// out. In the example above, a request travels:
//
//	Timeout (first — outermost) → Retry → Logging → Provider
//
// and the response travels back in reverse order.
package middleware
