package invoice

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/docsift/docsift/providers/llm"
)

type stubProvider struct {
	content string
	err     error
	last    llm.CompletionRequest
}

func (s *stubProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Content: s.content, FinishReason: "stop"}, nil
}

func (s *stubProvider) WithAPIKey(string) llm.Provider           { return s }
func (s *stubProvider) WithBaseURL(string) llm.Provider          { return s }
func (s *stubProvider) WithHTTPClient(*http.Client) llm.Provider { return s }

func TestExtract(t *testing.T) {
	stub := &stubProvider{content: "```json\n{\"invoice_number\": \"INV-001\", \"total\": 108.5}\n```"}
	x, err := New(stub)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	record, err := x.Extract(context.Background(), "Invoice INV-001, total $108.50")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if record["invoice_number"] != "INV-001" {
		t.Errorf("record = %v", record)
	}

	// The full invoice shape is embedded in the prompt.
	for _, field := range []string{"invoice_number", "line_items", "tax_rate", "YYYY-MM-DD format", "ISO code like USD, EUR"} {
		if !strings.Contains(stub.last.Prompt, field) {
			t.Errorf("prompt is missing %q", field)
		}
	}
}

func TestExtract_SentinelOnGarbage(t *testing.T) {
	raw := "This document does not appear to be an invoice."
	stub := &stubProvider{content: raw}
	x, _ := New(stub)

	record, err := x.Extract(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Extract() error = %v, want nil (sentinel contract)", err)
	}
	if !record.ParseFailed() {
		t.Fatalf("expected sentinel record, got %v", record)
	}
	if record.RawResponse() != raw {
		t.Errorf("RawResponse() = %q, want %q", record.RawResponse(), raw)
	}
}

func TestExtractLineItems(t *testing.T) {
	stub := &stubProvider{content: `[{"description": "Widget", "quantity": 2, "unit_price": 50, "total": 100}]`}
	x, _ := New(stub)

	items, err := x.ExtractLineItems(context.Background(), "invoice text")
	if err != nil {
		t.Fatalf("ExtractLineItems() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Description != "Widget" || items[0].UnitPrice != 50 || items[0].Total != 100 {
		t.Errorf("items[0] = %+v", items[0])
	}
	if stub.last.MaxTokens != lineItemsMaxTokens {
		t.Errorf("maxTokens = %d, want %d", stub.last.MaxTokens, lineItemsMaxTokens)
	}
}

func TestExtractLineItems_EmptyFallback(t *testing.T) {
	stub := &stubProvider{content: "no line items found in this document"}
	x, _ := New(stub)

	items, err := x.ExtractLineItems(context.Background(), "invoice text")
	if err != nil {
		t.Fatalf("ExtractLineItems() error = %v", err)
	}
	if items == nil {
		t.Fatal("fallback must be a non-nil slice")
	}
	if len(items) != 0 {
		t.Errorf("items = %v, want empty", items)
	}
}

func TestExtractAndValidate(t *testing.T) {
	stub := &stubProvider{content: `{
		"invoice_number": "INV-001",
		"vendor": {"name": "Acme Corp"},
		"customer": {"name": "Globex Inc"},
		"subtotal": 100,
		"tax": 8.5,
		"total": 200
	}`}
	x, _ := New(stub)

	result, err := x.ExtractAndValidate(context.Background(), "invoice text")
	if err != nil {
		t.Fatalf("ExtractAndValidate() error = %v", err)
	}
	if result.Data["invoice_number"] != "INV-001" {
		t.Errorf("Data = %v", result.Data)
	}
	if result.Validation.Valid {
		t.Error("Valid = true despite a total mismatch")
	}
	if len(result.Validation.Errors) != 1 {
		t.Errorf("Errors = %v, want one total mismatch", result.Validation.Errors)
	}
}

// Even an unparseable response flows through validation: the sentinel record
// fails the required-field checks, so the report explains what is missing.
func TestExtractAndValidate_Sentinel(t *testing.T) {
	stub := &stubProvider{content: "not an invoice"}
	x, _ := New(stub)

	result, err := x.ExtractAndValidate(context.Background(), "text")
	if err != nil {
		t.Fatalf("ExtractAndValidate() error = %v", err)
	}
	if !result.Data.ParseFailed() {
		t.Errorf("Data = %v, want sentinel", result.Data)
	}
	if result.Validation.Valid {
		t.Error("Valid = true for a sentinel record")
	}
	if len(result.Validation.Errors) != 4 {
		t.Errorf("Errors = %v, want all four required fields missing", result.Validation.Errors)
	}
}

func TestExtract_BackendError(t *testing.T) {
	backendErr := errors.New("rate limited")
	stub := &stubProvider{err: backendErr}
	x, _ := New(stub)

	if _, err := x.Extract(context.Background(), "text"); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
