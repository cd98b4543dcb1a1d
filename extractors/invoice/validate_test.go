package invoice

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/docsift/docsift/core/recovery"
)

// completeRecord returns a record that passes every rule. Tests mutate a copy.
func completeRecord() recovery.Record {
	return recovery.Record{
		"invoice_number": "INV-001",
		"vendor":         map[string]any{"name": "Acme Corp"},
		"customer":       map[string]any{"name": "Globex Inc"},
		"line_items": []any{
			map[string]any{"description": "Widget", "total": 60.0},
			map[string]any{"description": "Gadget", "total": 40.0},
		},
		"subtotal": 100.0,
		"tax_rate": 8.5,
		"tax":      8.5,
		"total":    108.5,
	}
}

func TestValidate_ConsistentInvoice(t *testing.T) {
	report := Validate(completeRecord())

	if !report.Valid {
		t.Errorf("Valid = false, errors: %v", report.Errors)
	}
	if len(report.Errors) != 0 {
		t.Errorf("Errors = %v, want none", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", report.Warnings)
	}
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	for _, field := range []string{"invoice_number", "total", "vendor", "customer"} {
		t.Run(field, func(t *testing.T) {
			record := completeRecord()
			delete(record, field)

			report := Validate(record)
			if report.Valid {
				t.Error("Valid = true for a record missing a required field")
			}

			found := false
			for _, e := range report.Errors {
				if strings.Contains(e, "Missing required field: "+field) {
					found = true
				}
			}
			if !found {
				t.Errorf("no missing-field error for %s in %v", field, report.Errors)
			}
		})
	}
}

// Values that decode from JSON as empty or zero count as missing.
func TestValidate_FalsyRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{name: "empty string", field: "invoice_number", value: ""},
		{name: "zero total", field: "total", value: 0.0},
		{name: "empty vendor object", field: "vendor", value: map[string]any{}},
		{name: "nil customer", field: "customer", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := completeRecord()
			record[tt.field] = tt.value

			if Validate(record).Valid {
				t.Errorf("Valid = true with %s = %v", tt.field, tt.value)
			}
		})
	}
}

func TestValidate_SubtotalMismatchIsWarning(t *testing.T) {
	record := completeRecord()
	record["line_items"] = []any{
		map[string]any{"total": 50.0},
		map[string]any{"total": 50.0},
	}
	record["subtotal"] = 110.0
	record["tax"] = 9.35
	record["tax_rate"] = 8.5
	record["total"] = 119.35

	report := Validate(record)

	// A subtotal that disagrees with the line items is suspicious, not fatal.
	if !report.Valid {
		t.Errorf("Valid = false, errors: %v", report.Errors)
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "Subtotal mismatch: calculated 100, reported 110") {
		t.Errorf("Warnings = %v", report.Warnings)
	}
}

func TestValidate_TaxMismatchIsWarning(t *testing.T) {
	record := completeRecord()
	record["tax"] = 12.0
	record["total"] = 112.0

	report := Validate(record)

	if !report.Valid {
		t.Errorf("Valid = false, errors: %v", report.Errors)
	}
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "Tax calculation mismatch: calculated 8.5, reported 12") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v", report.Warnings)
	}
}

func TestValidate_TotalMismatchIsError(t *testing.T) {
	record := completeRecord()
	record["total"] = 200.0

	report := Validate(record)

	if report.Valid {
		t.Error("Valid = true despite a total mismatch")
	}
	if len(report.Errors) != 1 || !strings.Contains(report.Errors[0], "Total mismatch: calculated 108.5, reported 200") {
		t.Errorf("Errors = %v", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", report.Warnings)
	}
}

func TestValidate_Tolerance(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		valid bool
	}{
		{name: "exact", total: 108.5, valid: true},
		{name: "within tolerance", total: 108.509, valid: true},
		{name: "just past tolerance", total: 108.52, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := completeRecord()
			record["total"] = tt.total

			if got := Validate(record).Valid; got != tt.valid {
				t.Errorf("Valid = %v, want %v", got, tt.valid)
			}
		})
	}
}

// Arithmetic rules only run when their inputs are present; a sparse record
// with the required fields still passes.
func TestValidate_SparseRecordSkipsArithmetic(t *testing.T) {
	record := recovery.Record{
		"invoice_number": "INV-002",
		"total":          42.0,
		"vendor":         map[string]any{"name": "Acme Corp"},
		"customer":       map[string]any{"name": "Globex Inc"},
	}

	report := Validate(record)
	if !report.Valid {
		t.Errorf("Valid = false, errors: %v", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", report.Warnings)
	}
}

func TestValidate_AllRulesAccumulate(t *testing.T) {
	record := recovery.Record{
		"line_items": []any{map[string]any{"total": 10.0}},
		"subtotal":   100.0,
		"tax_rate":   10.0,
		"tax":        5.0,
		"total":      999.0,
		"vendor":     map[string]any{"name": "Acme Corp"},
	}

	report := Validate(record)

	// Missing invoice_number and customer, total reported but mismatched: the
	// required-field check sees a truthy total, so that rule passes for it.
	if len(report.Errors) != 3 {
		t.Errorf("Errors = %v, want 3 entries", report.Errors)
	}
	if len(report.Warnings) != 2 {
		t.Errorf("Warnings = %v, want 2 entries", report.Warnings)
	}
	if report.Valid {
		t.Error("Valid = true despite errors")
	}
}

func TestValidationReport_EmptySlicesMarshalAsArrays(t *testing.T) {
	data, err := json.Marshal(Validate(completeRecord()))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got := string(data)
	if !strings.Contains(got, `"warnings":[]`) || !strings.Contains(got, `"errors":[]`) {
		t.Errorf("empty slices must serialise as [], got %s", got)
	}
}
