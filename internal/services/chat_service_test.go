package services

import (
	"context"
	"testing"

	"budget-assistant/internal/dto"
	"budget-assistant/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ChatServiceTestSuite struct {
	suite.Suite
	ragService *mockBudgetRAGService
	completion *mockCompletionClient
	service    *ChatService
	userID     uuid.UUID
}

func TestChatServiceSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}

func (s *ChatServiceTestSuite) SetupTest() {
	s.ragService = new(mockBudgetRAGService)
	s.completion = new(mockCompletionClient)
	s.service = NewChatService(s.ragService, s.completion, NewNoopMetrics())
	s.userID = uuid.New()
}

func (s *ChatServiceTestSuite) TestIsBudgetQuery_PersonalQuestions() {
	budgetQueries := []string{
		"Tell me about my budget",
		"What are MY EXPENSES?",
		"how much did i spend last week",
		"How much have I spent overall",
		"What's my balance?",
		"Show my savings progress",
		"how are my finances doing",
		"what did I spend on coffee",
		"summarize this month",
		"compare with last month",
	}

	for _, query := range budgetQueries {
		s.True(IsBudgetQuery(query), "query %q should be a budget query", query)
	}
}

func (s *ChatServiceTestSuite) TestIsBudgetQuery_GeneralQuestions() {
	generalQueries := []string{
		"How do I create a budget?",
		"What is the 50/30/20 rule?",
		"Should I invest in index funds?",
		"Give me tips for saving money",
		"",
	}

	for _, query := range generalQueries {
		s.False(IsBudgetQuery(query), "query %q should be a general query", query)
	}
}

func (s *ChatServiceTestSuite) TestRespond_BudgetQueryUsesRAGPipeline() {
	s.ragService.On("AnswerBudgetQuery", mock.Anything, s.userID, "How much did I spend this month?").
		Return(&models.BudgetQueryResponse{Answer: "You spent $500 this month."})

	response := s.service.Respond(context.Background(), s.userID, "How much did I spend this month?", nil)

	s.Equal("You spent $500 this month.", response)
	s.ragService.AssertExpectations(s.T())
	s.completion.AssertNotCalled(s.T(), "CompleteWithHistory", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ChatServiceTestSuite) TestRespond_GeneralQueryUsesCompletionWithHistory() {
	history := []dto.ChatMessage{
		{Role: dto.ChatRoleUser, Content: "Hi"},
		{Role: dto.ChatRoleAssistant, Content: "Hello! How can I help?"},
	}

	s.completion.On("CompleteWithHistory", mock.Anything, history, "What is compound interest?").
		Return("Compound interest is interest on interest.")

	response := s.service.Respond(context.Background(), s.userID, "What is compound interest?", history)

	s.Equal("Compound interest is interest on interest.", response)
	s.completion.AssertExpectations(s.T())
	s.ragService.AssertNotCalled(s.T(), "AnswerBudgetQuery", mock.Anything, mock.Anything, mock.Anything)
}
