package dto

import "time"

// Chat message roles as used by the UI. The completion client maps
// these onto the Gemini API vocabulary (assistant -> model).
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of the conversation as owned by the UI
// layer. The server only reads role/content; it never stores turns.
type ChatMessage struct {
	ID        string    `json:"id,omitempty"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// ChatRequest is the body of POST /api/v1/chat
type ChatRequest struct {
	Message string        `json:"message" validate:"required"`
	History []ChatMessage `json:"history" validate:"omitempty,dive"`
}

// ChatResponse is the success body of POST /api/v1/chat
type ChatResponse struct {
	Response string `json:"response"`
}
