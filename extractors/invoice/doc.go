// Package invoice extracts structured data from invoices and receipts and
// checks the arithmetic consistency of what was extracted.
//
// [Extractor.Extract] runs the full fixed invoice schema through the
// core/extractor pipeline; [Extractor.ExtractLineItems] is a narrow
// hand-authored prompt that shares the same recovery path but returns a
// typed slice with an empty-slice fallback. [Validate] reconciles the
// extracted amounts — line-item totals against the subtotal, subtotal and
// tax rate against the tax, subtotal plus tax against the grand total — and
// reports findings as data, never as errors.
package invoice
