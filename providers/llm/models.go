package llm

/*
	##### PROVIDER INPUT #####
*/

// CompletionRequest represents a single text-completion request.
type CompletionRequest struct {
	Model        string  `json:"model,omitempty"`         // Model name or identifier
	Prompt       string  `json:"prompt"`                  // The user prompt, passed verbatim
	SystemPrompt string  `json:"system_prompt,omitempty"` // Optional system instructions
	Temperature  float64 `json:"temperature,omitempty"`   // Sampling temperature (0.0 to 1.0)
	MaxTokens    int     `json:"max_tokens,omitempty"`    // Output-length budget in tokens
}

/*
	##### PROVIDER OUTPUT #####
*/

// CompletionResponse represents the completed response from a provider,
// mapped to a generic format shared by all implementations.
type CompletionResponse struct {
	// Id is the provider-assigned response identifier, when available.
	Id string `json:"id,omitempty"`
	// Model is the name of the model that produced the response.
	Model string `json:"model,omitempty"`
	// Content is the raw completion text. No structure is guaranteed; models
	// routinely wrap payloads in prose or markdown fences.
	Content string `json:"content"`
	// FinishReason explains why the model stopped (e.g. "stop", "length").
	FinishReason string `json:"finish_reason,omitempty"`
	// Usage reports token counts when the provider returns them.
	Usage *Usage `json:"usage,omitempty"`
}

// Usage reports token usage counts for a single request/response pair.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
