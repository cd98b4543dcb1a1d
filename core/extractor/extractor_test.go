package extractor

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/docsift/docsift/core/schema"
	"github.com/docsift/docsift/providers/llm"
)

// stubProvider records the last request and replies with a canned completion.
type stubProvider struct {
	content string
	err     error
	last    llm.CompletionRequest
	calls   int
}

func (s *stubProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.last = req
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{
		Id:           "stub-1",
		Model:        req.Model,
		Content:      s.content,
		FinishReason: "stop",
	}, nil
}

func (s *stubProvider) WithAPIKey(string) llm.Provider           { return s }
func (s *stubProvider) WithBaseURL(string) llm.Provider          { return s }
func (s *stubProvider) WithHTTPClient(*http.Client) llm.Provider { return s }

func TestNew_NilProvider(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil provider")
	}
}

func TestNew_Defaults(t *testing.T) {
	stub := &stubProvider{content: "{}"}
	e, err := New(stub)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := e.Complete(context.Background(), "hi", 0); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if stub.last.Temperature != DefaultTemperature {
		t.Errorf("temperature = %v, want %v", stub.last.Temperature, DefaultTemperature)
	}
	if stub.last.MaxTokens != DefaultMaxTokens {
		t.Errorf("maxTokens = %d, want %d", stub.last.MaxTokens, DefaultMaxTokens)
	}
}

func TestNew_Options(t *testing.T) {
	stub := &stubProvider{content: "{}"}
	e, err := New(stub,
		WithModel("gpt-4o-mini"),
		WithTemperature(0.7),
		WithMaxTokens(123),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := e.Complete(context.Background(), "hi", 0); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if stub.last.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", stub.last.Model)
	}
	if stub.last.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", stub.last.Temperature)
	}
	if stub.last.MaxTokens != 123 {
		t.Errorf("maxTokens = %d, want 123", stub.last.MaxTokens)
	}
}

func TestComplete_ExplicitBudgetWins(t *testing.T) {
	stub := &stubProvider{content: "ok"}
	e, _ := New(stub)

	if _, err := e.Complete(context.Background(), "hi", 42); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if stub.last.MaxTokens != 42 {
		t.Errorf("maxTokens = %d, want 42", stub.last.MaxTokens)
	}
}

func TestExtractStructured_PromptCarriesSchemaAndText(t *testing.T) {
	stub := &stubProvider{content: `{"name": "Acme"}`}
	e, _ := New(stub)

	desc := schema.Object(F("name"))
	_, err := e.ExtractStructured(context.Background(), "Acme Corp was founded in 1999.", desc)
	if err != nil {
		t.Fatalf("ExtractStructured() error = %v", err)
	}

	prompt := stub.last.Prompt
	if !strings.Contains(prompt, desc.Render()) {
		t.Errorf("prompt does not embed the rendered schema:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Acme Corp was founded in 1999.") {
		t.Errorf("prompt does not embed the source text:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Return ONLY valid JSON") {
		t.Errorf("prompt is missing the JSON-only instruction:\n%s", prompt)
	}
}

// F is a local shorthand so the schema literal above reads like the real
// call sites.
func F(name string) schema.Field {
	return schema.F(name, schema.String())
}

func TestExtractStructured_RecoversFencedPayload(t *testing.T) {
	stub := &stubProvider{content: "Here you go:\n```json\n{\"name\": \"Acme\"}\n```"}
	e, _ := New(stub)

	record, err := e.ExtractStructured(context.Background(), "text", schema.Object(F("name")))
	if err != nil {
		t.Fatalf("ExtractStructured() error = %v", err)
	}
	if record["name"] != "Acme" {
		t.Errorf("record = %v, want name=Acme", record)
	}
}

func TestExtractStructured_SentinelOnGarbage(t *testing.T) {
	raw := "I cannot produce structured output for this document."
	stub := &stubProvider{content: raw}
	e, _ := New(stub)

	record, err := e.ExtractStructured(context.Background(), "text", schema.Object(F("name")))
	if err != nil {
		t.Fatalf("ExtractStructured() error = %v, want nil (sentinel contract)", err)
	}
	if !record.ParseFailed() {
		t.Fatalf("expected sentinel record, got %v", record)
	}
	if record.RawResponse() != raw {
		t.Errorf("RawResponse() = %q, want %q", record.RawResponse(), raw)
	}
}

func TestExtractStructured_BackendErrorPropagates(t *testing.T) {
	backendErr := errors.New("connection refused")
	stub := &stubProvider{err: backendErr}
	e, _ := New(stub)

	_, err := e.ExtractStructured(context.Background(), "text", schema.Object(F("name")))
	if !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error to propagate, got %v", err)
	}
}
