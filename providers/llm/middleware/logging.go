package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/docsift/docsift/internal/utils"
	"github.com/docsift/docsift/providers/llm"
)

// LogLevel controls how much detail the logging middleware emits per request.
type LogLevel int

const (
	// LogLevelMinimal logs only the model name, total duration, and token counts.
	// Use this when you want lightweight audit trails without noise.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard logs everything in Minimal plus the prompt size and
	// finish reason. This is the recommended default for most applications.
	LogLevelStandard

	// LogLevelVerbose logs everything in Standard plus the prompt and the full
	// response content, each truncated to 500 characters.
	//
	// WARNING: DO NOT use LogLevelVerbose in production. It will log raw prompt
	// and response text, which may contain sensitive user data, secrets, or PII.
	// It is intended solely for local debugging and development.
	LogLevelVerbose
)

// truncateLen is the maximum content length included in verbose log output.
const truncateLen = 500

// NewLogging creates a [Middleware] that emits structured slog log entries
// before and after every provider call.
//
// The logger parameter must not be nil. Use slog.Default() if you have not
// configured a custom logger.
func NewLogging(logger *slog.Logger, level LogLevel) Middleware {
	return func(next CompleteFunc) CompleteFunc {
		return func(ctx context.Context, request llm.CompletionRequest) (*llm.CompletionResponse, error) {
			logger.InfoContext(ctx, "llm complete",
				buildRequestAttrs(request, level)...,
			)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "llm complete failed",
					slog.String("model", request.Model),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			logger.InfoContext(ctx, "llm complete succeeded",
				buildResponseAttrs(response, elapsed, level)...,
			)

			return response, nil
		}
	}
}

// buildRequestAttrs assembles the slog attributes for the pre-call log entry
// according to the configured verbosity level.
func buildRequestAttrs(request llm.CompletionRequest, level LogLevel) []any {
	attrs := []any{
		slog.String("model", request.Model),
	}

	if level >= LogLevelStandard {
		attrs = append(attrs,
			slog.Int("prompt_size", len(request.Prompt)),
			slog.Float64("temperature", request.Temperature),
			slog.Int("max_tokens", request.MaxTokens),
		)
	}

	if level >= LogLevelVerbose {
		attrs = append(attrs,
			slog.String("prompt", utils.TruncateString(request.Prompt, truncateLen)),
		)
	}

	return attrs
}

// buildResponseAttrs assembles the slog attributes for the post-call log entry
// according to the configured verbosity level.
func buildResponseAttrs(response *llm.CompletionResponse, elapsed time.Duration, level LogLevel) []any {
	attrs := []any{
		slog.String("model", response.Model),
		slog.Duration("duration", elapsed),
	}

	if response.Usage != nil {
		attrs = append(attrs,
			slog.Int("prompt_tokens", response.Usage.PromptTokens),
			slog.Int("completion_tokens", response.Usage.CompletionTokens),
			slog.Int("total_tokens", response.Usage.TotalTokens),
		)
	}

	if level >= LogLevelStandard {
		attrs = append(attrs,
			slog.String("finish_reason", response.FinishReason),
		)
	}

	if level >= LogLevelVerbose {
		attrs = append(attrs,
			slog.String("content", utils.TruncateString(response.Content, truncateLen)),
		)
	}

	return attrs
}
