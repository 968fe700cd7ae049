package services

import (
	"context"

	"budget-assistant/internal/dto"
	"budget-assistant/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-written test doubles for the chat pipeline interfaces.

type mockBudgetDataService struct {
	mock.Mock
}

func (m *mockBudgetDataService) Fetch(ctx context.Context, userID uuid.UUID, categories []models.DataCategory) (*models.BudgetData, error) {
	args := m.Called(ctx, userID, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BudgetData), args.Error(1)
}

type mockCompletionClient struct {
	mock.Mock
}

func (m *mockCompletionClient) Complete(ctx context.Context, prompt string) string {
	args := m.Called(ctx, prompt)
	return args.String(0)
}

func (m *mockCompletionClient) CompleteWithHistory(ctx context.Context, history []dto.ChatMessage, message string) string {
	args := m.Called(ctx, history, message)
	return args.String(0)
}

type mockBudgetRAGService struct {
	mock.Mock
}

func (m *mockBudgetRAGService) AnswerBudgetQuery(ctx context.Context, userID uuid.UUID, query string) *models.BudgetQueryResponse {
	args := m.Called(ctx, userID, query)
	return args.Get(0).(*models.BudgetQueryResponse)
}
