package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/docsift/docsift/core/recovery"
	"github.com/docsift/docsift/core/schema"
	"github.com/docsift/docsift/providers/llm"
	"github.com/docsift/docsift/providers/observability"
)

const (
	// DefaultTemperature favours deterministic output; extraction wants the
	// most likely reading of the source text, not a creative one.
	DefaultTemperature = 0.1

	// DefaultMaxTokens is a generous output-length budget for full-document
	// extractions. Narrow operations pass their own smaller budgets.
	DefaultMaxTokens = 2000
)

// Extractor issues extraction prompts against a single completion backend.
// It is stateless across invocations and safe for concurrent use as long as
// the underlying provider is.
type Extractor struct {
	provider    llm.Provider
	model       string
	temperature float64
	maxTokens   int
}

// Option configures an [Extractor] at construction time.
type Option func(*Extractor)

// WithModel sets the model identifier passed to the provider on every call.
func WithModel(model string) Option {
	return func(e *Extractor) {
		e.model = model
	}
}

// WithTemperature overrides [DefaultTemperature].
func WithTemperature(temperature float64) Option {
	return func(e *Extractor) {
		e.temperature = temperature
	}
}

// WithMaxTokens overrides [DefaultMaxTokens] for full-schema extractions.
func WithMaxTokens(maxTokens int) Option {
	return func(e *Extractor) {
		e.maxTokens = maxTokens
	}
}

// New returns an [Extractor] bound to the given provider. Configuration is
// explicit: nothing is read from the environment here.
func New(provider llm.Provider, opts ...Option) (*Extractor, error) {
	if provider == nil {
		return nil, fmt.Errorf("extractor: provider must not be nil")
	}

	e := &Extractor{
		provider:    provider,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Complete issues a single blocking completion call with the extractor's
// model and temperature and the given output budget (0 means the extractor's
// default), returning the raw completion text. Provider failures propagate
// unchanged; there is no retry at this layer.
//
// Complete is the shared backend path for every operation in this package and
// for the narrow facade operations that author their own prompts.
func (e *Extractor) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = e.maxTokens
	}

	response, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model:       e.model,
		Prompt:      prompt,
		Temperature: e.temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}

	return response.Content, nil
}

// ExtractStructured extracts data from text according to the provided shape
// descriptor. The descriptor is rendered into the prompt as documentation for
// the model; the response is never validated against it.
//
// On recovery failure the returned record is the parse-failure sentinel
// carrying the raw response (see [recovery.Record.ParseFailed]); the error
// return is reserved for backend failures.
func (e *Extractor) ExtractStructured(ctx context.Context, text string, desc schema.Descriptor) (recovery.Record, error) {
	span := observability.SpanFromContext(ctx)
	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrExtractionOperation, "structured"),
			observability.Int(observability.AttrExtractionInputSize, len(text)),
		)
	}

	prompt := fmt.Sprintf(`Extract structured data from the following text according to the provided schema.

Schema:
%s

Text:
%s

Return ONLY valid JSON matching the schema:`, desc.Render(), text)

	content, err := e.Complete(ctx, prompt, 0)
	if err != nil {
		return nil, err
	}

	return e.recoverRecord(ctx, content)
}

// recoverRecord runs the shared recovery pipeline over a raw completion and
// records the outcome on any active span.
func (e *Extractor) recoverRecord(ctx context.Context, content string) (recovery.Record, error) {
	record, strategy, err := recovery.ParseAsWithStrategy[recovery.Record](content)

	span := observability.SpanFromContext(ctx)
	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrRecoveryStrategy, string(strategy)),
			observability.Bool(observability.AttrRecoveryFailed, err != nil),
		)
	}

	if err != nil {
		if observer := observability.ObserverFromContext(ctx); observer != nil {
			observer.Debug(ctx, "recovery failed, returning sentinel record",
				observability.Error(err),
			)
		}
		return recovery.Failure(content), nil
	}

	return record, nil
}

// trimmed returns the completion content with surrounding whitespace removed,
// for operations whose result is plain text rather than structured data.
func trimmed(content string) string {
	return strings.TrimSpace(content)
}
