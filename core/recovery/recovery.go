package recovery

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/docsift/docsift/internal/utils"
)

const (
	// jsonFenceMarker opens a markdown code block explicitly tagged as JSON.
	jsonFenceMarker = "```json"
	// fenceMarker opens (and closes) a generic markdown code block.
	fenceMarker = "```"
)

// ErrUnrecoverable is returned by [ParseAs] when every recovery strategy
// failed to produce a parseable payload. Callers that need the data-shaped
// contract instead of an error should use [AsRecord] or [AsList].
var ErrUnrecoverable = errors.New("docsift: no parseable payload in response")

// Strategy identifies which recovery step produced a payload. The values
// match the recovery.strategy observability attribute.
type Strategy string

const (
	// StrategyDirect means the whole response parsed as-is.
	StrategyDirect Strategy = "direct"
	// StrategyJSONFence means the payload came from the first ```json fence.
	StrategyJSONFence Strategy = "json_fence"
	// StrategyAnyFence means the payload came from the first untagged fence.
	StrategyAnyFence Strategy = "any_fence"
	// StrategyNone means no strategy succeeded.
	StrategyNone Strategy = "none"
)

// ParseAs attempts to recover a value of type T from a raw completion. The
// strategies run in strict order, first success wins:
//
//  1. Parse the whole response as JSON.
//  2. Parse the contents of the first ```json fenced block.
//  3. Parse the contents of the first untagged ``` fenced block.
//
// Each candidate is tried verbatim first; if that fails the candidate is run
// through jsonrepair and tried again, which recovers from the minor syntax
// noise (single quotes, trailing commas, unquoted keys) models routinely
// produce. When no strategy succeeds the zero value and an error wrapping
// [ErrUnrecoverable] are returned.
//
// A fenced block with a missing closing fence is taken to run to the end of
// the text. Only the first fence of each kind is considered; payloads in
// later blocks are ignored. That mirrors how downstream consumers have always
// behaved and is a known limitation rather than a guarantee worth changing:
// when a response contains multiple fenced blocks the intended one is
// ambiguous anyway.
func ParseAs[T any](raw string) (T, error) {
	result, _, err := ParseAsWithStrategy[T](raw)
	return result, err
}

// ParseAsWithStrategy is [ParseAs] with the winning [Strategy] reported
// alongside the result, for callers that record recovery telemetry.
func ParseAsWithStrategy[T any](raw string) (T, Strategy, error) {
	var zero T

	for _, c := range candidates(raw) {
		var result T
		if err := decode(c.payload, &result); err == nil {
			return result, c.strategy, nil
		}
	}

	return zero, StrategyNone, fmt.Errorf("%w: %s", ErrUnrecoverable, utils.TruncateString(raw, 200))
}

// candidate pairs a payload substring with the strategy that produced it.
type candidate struct {
	strategy Strategy
	payload  string
}

// candidates returns the payload substrings to try, in strategy order.
// Strategies whose fence marker is absent from raw are skipped entirely.
func candidates(raw string) []candidate {
	out := []candidate{{StrategyDirect, raw}}

	if payload, ok := fencedBlock(raw, jsonFenceMarker); ok {
		out = append(out, candidate{StrategyJSONFence, payload})
	}
	if payload, ok := fencedBlock(raw, fenceMarker); ok {
		out = append(out, candidate{StrategyAnyFence, payload})
	}

	return out
}

// fencedBlock extracts the contents of the first code block opened by marker.
// The block runs from just after the marker to the next closing fence, or to
// the end of the text when the closing fence is missing (truncated output).
func fencedBlock(raw string, marker string) (string, bool) {
	idx := strings.Index(raw, marker)
	if idx < 0 {
		return "", false
	}

	block := raw[idx+len(marker):]
	if end := strings.Index(block, fenceMarker); end >= 0 {
		block = block[:end]
	}

	return strings.TrimSpace(block), true
}

// decode unmarshals payload into out, retrying once with a repaired payload
// when the verbatim text is not valid JSON.
func decode(payload string, out any) error {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return fmt.Errorf("empty payload")
	}

	if err := json.Unmarshal([]byte(payload), out); err == nil {
		return nil
	}

	repaired, err := jsonrepair.JSONRepair(payload)
	if err != nil {
		return fmt.Errorf("failed to repair payload: %w", err)
	}

	return json.Unmarshal([]byte(repaired), out)
}
