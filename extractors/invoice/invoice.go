package invoice

import (
	"context"
	"fmt"

	"github.com/docsift/docsift/core/extractor"
	"github.com/docsift/docsift/core/recovery"
	"github.com/docsift/docsift/core/schema"
	"github.com/docsift/docsift/providers/llm"
)

// lineItemsMaxTokens bounds the narrow line-items completion.
const lineItemsMaxTokens = 1500

// invoiceSchema is the fixed shape description for full invoice extraction.
// It is immutable: built once and only ever rendered into prompts.
var invoiceSchema = schema.Object(
	schema.F("invoice_number", schema.String()),
	schema.F("invoice_date", schema.StringHint("YYYY-MM-DD format")),
	schema.F("due_date", schema.StringHint("YYYY-MM-DD format")),
	schema.F("vendor", partySchema()),
	schema.F("customer", partySchema()),
	schema.F("line_items", schema.Array(schema.Object(
		schema.F("description", schema.String()),
		schema.F("quantity", schema.Number()),
		schema.F("unit_price", schema.Number()),
		schema.F("total", schema.Number()),
	))),
	schema.F("subtotal", schema.Number()),
	schema.F("tax", schema.Number()),
	schema.F("tax_rate", schema.NumberHint("percentage")),
	schema.F("total", schema.Number()),
	schema.F("currency", schema.StringHint("ISO code like USD, EUR")),
	schema.F("payment_terms", schema.String()),
	schema.F("payment_method", schema.String()),
	schema.F("notes", schema.String()),
)

// partySchema describes the vendor and customer blocks, which share a shape.
func partySchema() schema.Descriptor {
	return schema.Object(
		schema.F("name", schema.String()),
		schema.F("address", schema.String()),
		schema.F("phone", schema.String()),
		schema.F("email", schema.String()),
	)
}

// LineItem is a single invoice line. The per-line quantity*unit_price=total
// identity is deliberately not checked anywhere; only the aggregate
// subtotal/tax/total reconciliation in [Validate] is.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Result pairs extracted invoice data with its validation report, the shape
// returned by [Extractor.ExtractAndValidate].
type Result struct {
	Data       recovery.Record  `json:"data"`
	Validation ValidationReport `json:"validation"`
}

// Extractor extracts structured data from invoice and receipt text.
type Extractor struct {
	base *extractor.Extractor
}

// New returns an invoice [Extractor] bound to the given provider. Options are
// forwarded to the underlying core extractor.
func New(provider llm.Provider, opts ...extractor.Option) (*Extractor, error) {
	base, err := extractor.New(provider, opts...)
	if err != nil {
		return nil, err
	}
	return &Extractor{base: base}, nil
}

// Extract extracts the full invoice shape from invoiceText. On recovery
// failure the returned record is the parse-failure sentinel; the error return
// is reserved for backend failures.
func (x *Extractor) Extract(ctx context.Context, invoiceText string) (recovery.Record, error) {
	return x.base.ExtractStructured(ctx, invoiceText, invoiceSchema)
}

// ExtractLineItems extracts only the line items, via a narrow prompt rather
// than the full schema. The result is always a usable slice: recovery failure
// yields an empty slice, never an error.
func (x *Extractor) ExtractLineItems(ctx context.Context, invoiceText string) ([]LineItem, error) {
	prompt := fmt.Sprintf(`Extract all line items from this invoice.

Invoice:
%s

Return ONLY a JSON array of line items with:
- description
- quantity
- unit_price
- total

Format:
[
  {
    "description": "Item name",
    "quantity": 2,
    "unit_price": 50.00,
    "total": 100.00
  }
]`, invoiceText)

	content, err := x.base.Complete(ctx, prompt, lineItemsMaxTokens)
	if err != nil {
		return nil, err
	}

	return recovery.AsList[LineItem](content), nil
}

// ExtractAndValidate extracts the full invoice shape and reconciles its
// arithmetic in one step.
func (x *Extractor) ExtractAndValidate(ctx context.Context, invoiceText string) (*Result, error) {
	data, err := x.Extract(ctx, invoiceText)
	if err != nil {
		return nil, err
	}

	return &Result{
		Data:       data,
		Validation: Validate(data),
	}, nil
}
