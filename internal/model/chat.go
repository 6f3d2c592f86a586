package model

// Chat roles accepted in a conversation.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// MessageContent is one text block of a chat message.
type MessageContent struct {
	Text string `json:"text" validate:"required"`
}

// ChatMessage is a single conversation turn.
type ChatMessage struct {
	Role    string           `json:"role" validate:"required,oneof=user assistant"`
	Content []MessageContent `json:"content" validate:"required,min=1,dive"`
}

// InferenceConfig tunes the model call. Nil fields take server defaults.
type InferenceConfig struct {
	MaxTokens   *int     `json:"maxTokens" validate:"omitempty,min=1"`
	Temperature *float64 `json:"temperature" validate:"omitempty,min=0,max=1"`
	TopP        *float64 `json:"topP" validate:"omitempty,min=0,max=1"`
}

// ChatRequest asks a question about a video chunk.
type ChatRequest struct {
	UserQuery         string           `json:"UserQuery" validate:"required"`
	ModelID           string           `json:"modelId"`
	Conversation      []ChatMessage    `json:"conversation" validate:"omitempty,dive"`
	InferenceConfig   *InferenceConfig `json:"inferenceConfig"`
	ChatTransactionID string           `json:"chatTransactionId"`
}

// ChatResponse returns the full conversation including the new answer.
type ChatResponse struct {
	Conversation      []ChatMessage   `json:"conversation"`
	ChatLastTime      string          `json:"chatLastTime"`
	ChatTransactionID string          `json:"chatTransactionId"`
	ModelID           string          `json:"modelId"`
	InferenceConfig   InferenceConfig `json:"inferenceConfig"`
}
