package recovery

// Keys and values used by the sentinel record returned when every recovery
// strategy fails. The sentinel is data, not an error: batch callers inspect
// it with [Record.ParseFailed] and keep going.
const (
	// ErrorKey holds the failure kind on a sentinel record.
	ErrorKey = "error"
	// RawResponseKey holds the original, unmodified completion text on a
	// sentinel record so the caller can inspect or re-process it.
	RawResponseKey = "raw_response"
	// ParseFailed is the failure kind set when no recovery strategy produced
	// a parseable payload.
	ParseFailed = "parse_failed"
)

// Record is the structured result of an extraction: field name to value
// (string, float64, nested map, or slice, following encoding/json's generic
// decoding). A Record is one-shot — created by recovery, read by validators
// or the caller, never mutated afterwards.
type Record map[string]any

// ParseFailed reports whether r is the sentinel produced by a failed
// recovery rather than genuinely extracted data.
func (r Record) ParseFailed() bool {
	kind, _ := r[ErrorKey].(string)
	_, hasRaw := r[RawResponseKey]
	return kind == ParseFailed && hasRaw
}

// RawResponse returns the original completion text carried by a sentinel
// record, or the empty string for ordinary records.
func (r Record) RawResponse() string {
	raw, _ := r[RawResponseKey].(string)
	return raw
}

// Failure builds the sentinel record for a completion that could not be
// recovered. The raw text is carried verbatim, without truncation.
func Failure(raw string) Record {
	return Record{
		ErrorKey:       ParseFailed,
		RawResponseKey: raw,
	}
}

// AsRecord recovers a map-shaped payload from a raw completion. On failure it
// returns [Failure] of the raw text instead of an error, so processing a
// batch of documents never requires per-document error handling.
func AsRecord(raw string) Record {
	record, err := ParseAs[Record](raw)
	if err != nil {
		return Failure(raw)
	}
	return record
}

// AsList recovers a sequence-shaped payload from a raw completion. On failure
// it returns an empty (non-nil) slice: callers of sequence-shaped operations
// expect a slice result unconditionally.
func AsList[T any](raw string) []T {
	items, err := ParseAs[[]T](raw)
	if err != nil || items == nil {
		return []T{}
	}
	return items
}
