package anthropic

import (
	"strings"

	"github.com/docsift/docsift/providers/llm"
)

// defaultMaxTokens is used when the caller does not set an output budget;
// Anthropic requires max_tokens on every request.
const defaultMaxTokens = 4096

// anthropicRequest is the Messages API request wire format. Only the fields
// this package sends are modeled.
type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature *float64           `json:"temperature,omitempty"`
}

// anthropicMessage is a single message in the Messages API format.
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse represents the JSON response returned by the Messages
// API. Content arrives as an array of typed blocks; this package consumes the
// text blocks only.
type anthropicResponse struct {
	// Id is the response identifier.
	Id string `json:"id"`
	// Type is the object type (for example "message").
	Type string `json:"type"`
	// Role is the role of the generated message (always "assistant").
	Role string `json:"role"`
	// Model is the name of the model that produced the response.
	Model string `json:"model"`
	// Content contains the generated content blocks.
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	// StopReason explains why generation stopped (e.g. "end_turn", "max_tokens").
	StopReason string `json:"stop_reason"`
	// Usage reports input/output token counts.
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// requestToAnthropic converts an llm.CompletionRequest into the Messages API
// wire format. The prompt text is carried as a single user message and the
// system prompt maps to the top-level system field.
func requestToAnthropic(request llm.CompletionRequest) anthropicRequest {
	maxTokens := request.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	req := anthropicRequest{
		Model:     request.Model,
		MaxTokens: maxTokens,
		System:    request.SystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: request.Prompt},
		},
	}
	if request.Temperature > 0 {
		temp := request.Temperature
		req.Temperature = &temp
	}

	return req
}

// anthropicToGeneric converts an anthropicResponse into the provider-agnostic
// llm.CompletionResponse. Multiple text blocks are concatenated in order;
// non-text blocks are skipped. The stop_reason vocabulary is normalised to
// the generic finish-reason values used by the rest of the library.
func anthropicToGeneric(response anthropicResponse) *llm.CompletionResponse {
	var content strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	return &llm.CompletionResponse{
		Id:           response.Id,
		Model:        response.Model,
		Content:      content.String(),
		FinishReason: normalizeStopReason(response.StopReason),
		Usage: &llm.Usage{
			PromptTokens:     response.Usage.InputTokens,
			CompletionTokens: response.Usage.OutputTokens,
			TotalTokens:      response.Usage.InputTokens + response.Usage.OutputTokens,
		},
	}
}

// normalizeStopReason maps Anthropic stop reasons onto the generic
// finish-reason vocabulary ("stop", "length") shared with other providers.
// Unknown values pass through unchanged.
func normalizeStopReason(stopReason string) string {
	switch stopReason {
	case "end_turn", "stop_sequence":
		return "stop"
	case "max_tokens":
		return "length"
	default:
		return stopReason
	}
}
