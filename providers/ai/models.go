package ai

// ChatRequest is a provider-agnostic chat completion request.
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name, informational for deployment-bound providers
	SystemPrompt     string            `json:"system_prompt,omitempty"`     // Optional system prompt
	Messages         []Message         `json:"messages"`                    // Conversation, system prompt excluded
	Attachments      []Attachment      `json:"attachments,omitempty"`       // Files sent with the last user message
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional sampling settings
}

// Message is one turn of the conversation.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// GenerationConfig holds sampling settings. Nil pointers leave the provider
// default in place.
type GenerationConfig struct {
	Temperature *float64 `json:"temperature,omitempty"` // Sampling temperature
	MaxTokens   int      `json:"max_tokens,omitempty"`  // Completion token limit, 0 means provider default
}

// Usage reports token accounting when the provider returns it.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatResponse is the provider-agnostic reply.
type ChatResponse struct {
	Id           string `json:"id,omitempty"`
	Model        string `json:"model,omitempty"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        *Usage `json:"usage,omitempty"`
}

// MessageRole is the author of a message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// LastUserIndex returns the index of the last user message, or -1.
func (r ChatRequest) LastUserIndex() int {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == RoleUser {
			return i
		}
	}
	return -1
}
