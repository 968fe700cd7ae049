package services

import (
	"context"
	"log/slog"

	"budget-assistant/internal/models"

	"github.com/google/uuid"
)

// BudgetDataFallback is returned when the user's budget data cannot be
// retrieved or assembled into a prompt
const BudgetDataFallback = "I'm sorry, but I encountered an error while retrieving your budget information. Please try again later."

// BudgetRAGService answers personal budget questions by grounding the
// model in the user's own stored data: classify the question, fetch
// the matching data subsets, assemble the prompt, complete.
type BudgetRAGService struct {
	dataService BudgetDataServiceInterface
	completion  CompletionClientInterface
	logger      *slog.Logger
}

// NewBudgetRAGService creates a new budget RAG service
func NewBudgetRAGService(dataService BudgetDataServiceInterface, completion CompletionClientInterface, logger *slog.Logger) *BudgetRAGService {
	return &BudgetRAGService{
		dataService: dataService,
		completion:  completion,
		logger:      logger,
	}
}

// AnswerBudgetQuery runs the full retrieval pipeline for one question.
// It never fails: pipeline errors collapse into a fallback answer with
// no data attached, and completion failures are already absorbed by
// the completion client.
func (s *BudgetRAGService) AnswerBudgetQuery(ctx context.Context, userID uuid.UUID, query string) *models.BudgetQueryResponse {
	categories := ClassifyQuery(query)

	data, err := s.dataService.Fetch(ctx, userID, categories)
	if err != nil {
		s.logger.ErrorContext(ctx, "budget data fetch failed",
			"user_id", userID,
			"error", err.Error(),
		)
		return &models.BudgetQueryResponse{Answer: BudgetDataFallback}
	}

	prompt, err := BuildBudgetPrompt(query, data)
	if err != nil {
		s.logger.ErrorContext(ctx, "budget prompt assembly failed",
			"user_id", userID,
			"error", err.Error(),
		)
		return &models.BudgetQueryResponse{Answer: BudgetDataFallback}
	}

	answer := s.completion.Complete(ctx, prompt)

	response := &models.BudgetQueryResponse{
		Answer:       answer,
		RelevantData: data,
	}

	// An aggregate with no populated fields (brand-new user, or every
	// branch degraded) is not worth echoing back to the client
	if data.IsEmpty() {
		s.logger.InfoContext(ctx, "answered from empty budget aggregate",
			"user_id", userID,
		)
		response.RelevantData = nil
	}

	return response
}
