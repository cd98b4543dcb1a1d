package openai

import (
	"github.com/docsift/docsift/providers/llm"
)

// chatRequest is the Chat Completions request wire format. Only the fields
// this package sends are modeled.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

// chatMessage is a single message in the Chat Completions format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse represents the JSON response returned by the Chat Completions
// endpoint. It mirrors the fields consumed by this package: id, model,
// choices, and usage.
type chatResponse struct {
	// Id is the response identifier.
	Id string `json:"id"`
	// Object is the type of object returned (for example "chat.completion").
	Object string `json:"object"`
	// Created is a Unix timestamp when the response was generated.
	Created int `json:"created"`
	// Model is the name of the model that produced the response.
	Model string `json:"model"`
	// Choices contains one or more generated completions.
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		// FinishReason explains why the model stopped (e.g. "stop", "length").
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	// Usage reports token usage counts for prompt/completion/total.
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// requestFromGeneric converts an llm.CompletionRequest into the Chat
// Completions wire format. The system prompt, when present, becomes the
// leading system message and the prompt text is carried as a single user
// message. Zero-valued temperature and max_tokens are omitted from the wire
// so the API applies its own defaults.
func requestFromGeneric(request llm.CompletionRequest) chatRequest {
	var messages []chatMessage
	if request.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: request.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: request.Prompt})

	req := chatRequest{
		Model:    request.Model,
		Messages: messages,
	}
	if request.Temperature > 0 {
		temp := request.Temperature
		req.Temperature = &temp
	}
	if request.MaxTokens > 0 {
		maxTokens := request.MaxTokens
		req.MaxTokens = &maxTokens
	}

	return req
}

// responseToGeneric converts a chatResponse into the provider-agnostic
// llm.CompletionResponse. Only the first choice is consumed; this package
// never requests more than one.
func responseToGeneric(response chatResponse) *llm.CompletionResponse {
	result := &llm.CompletionResponse{
		Id:    response.Id,
		Model: response.Model,
		Usage: &llm.Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
		},
	}

	if len(response.Choices) > 0 {
		result.Content = response.Choices[0].Message.Content
		result.FinishReason = response.Choices[0].FinishReason
	}

	return result
}
