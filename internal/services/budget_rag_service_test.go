package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"budget-assistant/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetRAGServiceTestSuite struct {
	suite.Suite
	dataService *mockBudgetDataService
	completion  *mockCompletionClient
	service     *BudgetRAGService
	userID      uuid.UUID
}

func TestBudgetRAGServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetRAGServiceTestSuite))
}

func (s *BudgetRAGServiceTestSuite) SetupTest() {
	s.dataService = new(mockBudgetDataService)
	s.completion = new(mockCompletionClient)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewBudgetRAGService(s.dataService, s.completion, logger)
	s.userID = uuid.New()
}

func (s *BudgetRAGServiceTestSuite) TestAnswerBudgetQuery_Success() {
	data := &models.BudgetData{
		Categories: []models.Category{{Name: "Groceries", Type: models.TransactionTypeExpense}},
	}

	s.dataService.On("Fetch", mock.Anything, s.userID, []models.DataCategory{models.DataCategoryCategories}).
		Return(data, nil)
	s.completion.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return len(prompt) > 0
	})).Return("Your biggest category is Groceries.")

	response := s.service.AnswerBudgetQuery(context.Background(), s.userID, "give me a category breakdown")

	s.Equal("Your biggest category is Groceries.", response.Answer)
	s.Equal(data, response.RelevantData)
	s.dataService.AssertExpectations(s.T())
	s.completion.AssertExpectations(s.T())
}

func (s *BudgetRAGServiceTestSuite) TestAnswerBudgetQuery_ClassifiesBeforeFetching() {
	s.dataService.On("Fetch", mock.Anything, s.userID, []models.DataCategory{models.DataCategorySummary}).
		Return(&models.BudgetData{}, nil)
	s.completion.On("Complete", mock.Anything, mock.Anything).Return("answer")

	response := s.service.AnswerBudgetQuery(context.Background(), s.userID, "hello")

	s.Equal("answer", response.Answer)
	s.dataService.AssertExpectations(s.T())
}

func (s *BudgetRAGServiceTestSuite) TestAnswerBudgetQuery_FetchFailureReturnsFallback() {
	s.dataService.On("Fetch", mock.Anything, s.userID, mock.Anything).
		Return(nil, errors.New("database unreachable"))

	response := s.service.AnswerBudgetQuery(context.Background(), s.userID, "how much did I spend?")

	s.Equal(BudgetDataFallback, response.Answer)
	s.Nil(response.RelevantData)
	s.completion.AssertNotCalled(s.T(), "Complete", mock.Anything, mock.Anything)
}

func (s *BudgetRAGServiceTestSuite) TestAnswerBudgetQuery_EmptyAggregateOmitsRelevantData() {
	s.dataService.On("Fetch", mock.Anything, s.userID, mock.Anything).
		Return(&models.BudgetData{}, nil)
	s.completion.On("Complete", mock.Anything, mock.Anything).
		Return("I don't have enough information about your budget yet.")

	response := s.service.AnswerBudgetQuery(context.Background(), s.userID, "show my transactions")

	s.Equal("I don't have enough information about your budget yet.", response.Answer)
	s.Nil(response.RelevantData)
}

func (s *BudgetRAGServiceTestSuite) TestAnswerBudgetQuery_PromptIncludesQuestion() {
	s.dataService.On("Fetch", mock.Anything, s.userID, mock.Anything).
		Return(&models.BudgetData{}, nil)

	var capturedPrompt string
	s.completion.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		capturedPrompt = prompt
		return true
	})).Return("ok")

	s.service.AnswerBudgetQuery(context.Background(), s.userID, "what did I buy?")

	s.Contains(capturedPrompt, "what did I buy?")
	s.Contains(capturedPrompt, "USER BUDGET DATA:")
}
