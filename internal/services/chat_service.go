package services

import (
	"context"
	"strings"

	"budget-assistant/internal/dto"

	"github.com/google/uuid"
)

// budgetKeywords are the phrases that mark a message as being about
// the user's own finances rather than general advice. First-person
// possessives dominate the list on purpose: "my budget" needs the
// user's data, "a budget" does not.
var budgetKeywords = []string{
	"my budget",
	"my spending",
	"my expenses",
	"my income",
	"how much did i spend",
	"how much have i spent",
	"my balance",
	"my account",
	"my savings",
	"my finances",
	"my transactions",
	"my categories",
	"spend on",
	"spent on",
	"this month",
	"last month",
}

// IsBudgetQuery reports whether a message asks about the user's own
// budget data.
func IsBudgetQuery(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range budgetKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// ChatService routes each incoming message to either the data-grounded
// budget pipeline or plain general-advice completion.
type ChatService struct {
	ragService BudgetRAGServiceInterface
	completion CompletionClientInterface
	metrics    MetricsRecorderInterface
}

// NewChatService creates a new chat service
func NewChatService(ragService BudgetRAGServiceInterface, completion CompletionClientInterface, metrics MetricsRecorderInterface) *ChatService {
	return &ChatService{
		ragService: ragService,
		completion: completion,
		metrics:    metrics,
	}
}

// Respond answers one chat message. Personal budget questions go
// through the RAG pipeline; everything else gets a history-aware
// general-advice completion.
func (s *ChatService) Respond(ctx context.Context, userID uuid.UUID, message string, history []dto.ChatMessage) string {
	if IsBudgetQuery(message) {
		s.metrics.RecordChatRequest("budget")
		return s.ragService.AnswerBudgetQuery(ctx, userID, message).Answer
	}

	s.metrics.RecordChatRequest("general")
	return s.completion.CompleteWithHistory(ctx, history, message)
}
