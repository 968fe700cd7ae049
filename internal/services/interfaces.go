package services

import (
	"context"
	"time"

	"budget-assistant/internal/dto"
	"budget-assistant/internal/models"

	"github.com/google/uuid"
)

// TokenServiceInterface defines JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines password hashing and validation operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// AuthServiceInterface defines authentication business operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error)
}

// BudgetDataServiceInterface fetches the subsets of a user's budget
// data needed to answer a question
type BudgetDataServiceInterface interface {
	Fetch(ctx context.Context, userID uuid.UUID, categories []models.DataCategory) (*models.BudgetData, error)
}

// CompletionClientInterface wraps the generative model. Implementations
// never return errors: any failure is logged and converted into a
// fixed, user-safe fallback string.
type CompletionClientInterface interface {
	// Complete runs a single-turn completion for a fully assembled prompt
	Complete(ctx context.Context, prompt string) string

	// CompleteWithHistory runs a multi-turn completion seeded with the
	// conversation history and a general-advisor persona
	CompleteWithHistory(ctx context.Context, history []dto.ChatMessage, message string) string
}

// BudgetRAGServiceInterface answers personal budget questions from the
// user's own stored data
type BudgetRAGServiceInterface interface {
	AnswerBudgetQuery(ctx context.Context, userID uuid.UUID, query string) *models.BudgetQueryResponse
}

// ChatServiceInterface routes an incoming chat message to either the
// budget RAG pipeline or general-advice completion
type ChatServiceInterface interface {
	Respond(ctx context.Context, userID uuid.UUID, message string, history []dto.ChatMessage) string
}

// SampleDataGeneratorInterface generates realistic budget fixtures for
// development environments
type SampleDataGeneratorInterface interface {
	DefaultCategories(userID uuid.UUID) []models.Category
	GenerateTransactions(userID uuid.UUID, months, perMonth int) []models.Transaction
	BuildHistory(userID uuid.UUID, transactions []models.Transaction) ([]models.MonthHistory, []models.YearHistory)
}

// MetricsRecorderInterface records operational metrics for the chat
// pipeline
type MetricsRecorderInterface interface {
	RecordChatRequest(route string)
	RecordFetchFailure(field string)
	RecordFetchDuration(duration time.Duration)
	RecordCompletion(model string, duration time.Duration, success bool)
}
