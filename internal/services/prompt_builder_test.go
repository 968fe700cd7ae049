package services

import (
	"testing"

	"budget-assistant/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PromptBuilderTestSuite struct {
	suite.Suite
}

func TestPromptBuilderSuite(t *testing.T) {
	suite.Run(t, new(PromptBuilderTestSuite))
}

func (s *PromptBuilderTestSuite) TestBuildBudgetPrompt_EmbedsQueryAndData() {
	data := &models.BudgetData{
		TransactionStats: []models.TransactionTypeTotal{
			{Type: models.TransactionTypeExpense, TotalAmount: decimal.NewFromFloat(1234.56), Count: 7},
		},
	}

	prompt, err := BuildBudgetPrompt("How much did I spend?", data)

	s.Require().NoError(err)
	s.Contains(prompt, "How much did I spend?")
	s.Contains(prompt, "transactionStats")
	s.Contains(prompt, "1234.56")
}

func (s *PromptBuilderTestSuite) TestBuildBudgetPrompt_ContainsInstructions() {
	prompt, err := BuildBudgetPrompt("anything", &models.BudgetData{})

	s.Require().NoError(err)
	s.Contains(prompt, "You are a helpful budget assistant")
	s.Contains(prompt, "ONLY the provided data")
	s.Contains(prompt, "USER BUDGET DATA:")
	s.Contains(prompt, "USER QUESTION:")
}

func (s *PromptBuilderTestSuite) TestBuildBudgetPrompt_EmptyDataSerializesToEmptyObject() {
	prompt, err := BuildBudgetPrompt("hello", &models.BudgetData{})

	s.Require().NoError(err)
	s.Contains(prompt, "{}")
}

func (s *PromptBuilderTestSuite) TestBuildBudgetPrompt_OmitsAbsentFields() {
	data := &models.BudgetData{
		Categories: []models.Category{{Name: "Groceries", Icon: "🛒", Type: models.TransactionTypeExpense}},
	}

	prompt, err := BuildBudgetPrompt("what categories do I have?", data)

	s.Require().NoError(err)
	s.Contains(prompt, "Groceries")
	s.NotContains(prompt, "recentTransactions")
	s.NotContains(prompt, "userSettings")
}
