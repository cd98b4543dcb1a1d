package invoice

import (
	"fmt"
	"strconv"

	"github.com/docsift/docsift/core/recovery"
)

// reconcileTolerance is the absolute tolerance, in currency minor units, used
// by every arithmetic reconciliation rule. It is deliberately not scaled to
// the document's magnitude: downstream consumers depend on the exact 0.01
// behaviour.
const reconcileTolerance = 0.01

// requiredFields are the fields an invoice record must carry with a truthy
// value to be considered valid at all.
var requiredFields = []string{"invoice_number", "total", "vendor", "customer"}

// ValidationReport is the outcome of reconciling an extracted invoice.
// Warnings and errors are data, never control flow: Valid is true exactly
// when Errors is empty, and warnings never affect it. The slices are always
// non-nil so the report serialises with [] rather than null.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

// Validate checks an extracted invoice record for completeness and internal
// arithmetic consistency. Every rule runs and contributes to the one report;
// nothing short-circuits.
//
// Rules:
//   - each of invoice_number, total, vendor, and customer must be present and
//     truthy (error)
//   - the sum of line-item totals must match the declared subtotal (warning:
//     line items may legitimately be a partial view)
//   - subtotal * tax_rate/100 must match the declared tax (warning: tax-rate
//     formatting in source documents is often ambiguous)
//   - subtotal + tax must match the declared total (error: if all three
//     fields were extracted, this is plain arithmetic and must hold)
//
// All comparisons use the absolute [reconcileTolerance]. Validate does not
// attempt semantic correction: a syntactically valid record whose numbers are
// wrong but self-consistent passes.
func Validate(record recovery.Record) ValidationReport {
	report := ValidationReport{
		Valid:    true,
		Warnings: []string{},
		Errors:   []string{},
	}

	// Required fields.
	for _, field := range requiredFields {
		if isFalsy(record[field]) {
			report.Errors = append(report.Errors, fmt.Sprintf("Missing required field: %s", field))
			report.Valid = false
		}
	}

	// Line-item totals vs declared subtotal.
	if items, ok := record["line_items"].([]any); ok && len(items) > 0 {
		calculated := 0.0
		for _, item := range items {
			if m, ok := item.(map[string]any); ok {
				calculated += numberOrZero(m["total"])
			}
		}
		reported := numberOrZero(record["subtotal"])

		if abs(calculated-reported) > reconcileTolerance {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"Subtotal mismatch: calculated %s, reported %s",
				formatAmount(calculated), formatAmount(reported)))
		}
	}

	// Tax calculation vs declared tax.
	if subtotal, ok := numberField(record, "subtotal"); ok {
		if taxRate, ok := numberField(record, "tax_rate"); ok {
			calculated := subtotal * (taxRate / 100)
			reported := numberOrZero(record["tax"])

			if abs(calculated-reported) > reconcileTolerance {
				report.Warnings = append(report.Warnings, fmt.Sprintf(
					"Tax calculation mismatch: calculated %s, reported %s",
					formatAmount(calculated), formatAmount(reported)))
			}
		}
	}

	// Subtotal plus tax vs declared total.
	if subtotal, ok := numberField(record, "subtotal"); ok {
		if tax, ok := numberField(record, "tax"); ok {
			calculated := subtotal + tax
			reported := numberOrZero(record["total"])

			if abs(calculated-reported) > reconcileTolerance {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"Total mismatch: calculated %s, reported %s",
					formatAmount(calculated), formatAmount(reported)))
				report.Valid = false
			}
		}
	}

	return report
}

// isFalsy reports whether a JSON-decoded value counts as absent for the
// required-field rule: nil, empty string, zero number, false, or an empty
// container.
func isFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case float64:
		return value == 0
	case bool:
		return !value
	case map[string]any:
		return len(value) == 0
	case []any:
		return len(value) == 0
	default:
		return false
	}
}

// numberField returns the named field as a float64 and whether it was present
// as a number at all. JSON numbers always decode as float64.
func numberField(record recovery.Record, key string) (float64, bool) {
	v, ok := record[key].(float64)
	return v, ok
}

// numberOrZero returns v as a float64, defaulting anything non-numeric to 0.
func numberOrZero(v any) float64 {
	f, _ := v.(float64)
	return f
}

// formatAmount renders an amount the shortest way that round-trips, so
// report messages read "108.5" rather than "108.500000".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
