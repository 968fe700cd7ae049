package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budget-assistant/internal/config"
	"budget-assistant/internal/dto"

	"google.golang.org/genai"
)

const (
	// BudgetAnswerFallback is returned when a data-grounded completion fails
	BudgetAnswerFallback = "I'm sorry, I couldn't generate a response based on your budget information at this time."

	// GeneralAdviceFallback is returned when a general-advice completion fails
	GeneralAdviceFallback = "I'm sorry, I'm having trouble providing financial advice at the moment. Please try again later."

	// generalAdvisorPersona is the synthetic leading turn that fixes
	// the assistant's persona for general-advice conversations
	generalAdvisorPersona = "You are a helpful budget assistant providing general financial advice. You provide concise, practical financial guidance and budgeting tips."
)

var errEmptyCompletion = errors.New("model returned no text")

// GeminiService is the completion client backed by Google's Gemini
// API. It uses a stronger model for data-grounded budget answers and a
// cheaper one for general-advice chat, and converts every failure into
// a fixed fallback string so callers never see a raw transport error.
type GeminiService struct {
	client          *genai.Client
	ragModel        string
	chatModel       string
	maxOutputTokens int32
	timeout         time.Duration
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewGeminiService creates the Gemini completion client. The client is
// a process-wide resource: construct it once at startup and inject it.
func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig, metrics MetricsRecorderInterface, logger *slog.Logger) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:          client,
		ragModel:        cfg.RAGModel,
		chatModel:       cfg.ChatModel,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
		timeout:         cfg.Timeout,
		metrics:         metrics,
		logger:          logger,
	}, nil
}

// Complete runs a single-turn completion against the RAG model.
func (s *GeminiService) Complete(ctx context.Context, prompt string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()

	result, err := s.client.Models.GenerateContent(ctx,
		s.ragModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			MaxOutputTokens: s.maxOutputTokens,
		},
	)
	if err == nil && result.Text() == "" {
		err = errEmptyCompletion
	}
	if err != nil {
		s.recordFailure(ctx, s.ragModel, start, err)
		return BudgetAnswerFallback
	}

	s.metrics.RecordCompletion(s.ragModel, time.Since(start), true)
	return result.Text()
}

// CompleteWithHistory runs a multi-turn completion against the chat
// model, seeding the session with the advisor persona and the caller's
// conversation history. UI roles (user/assistant) are translated to
// the Gemini vocabulary (user/model).
func (s *GeminiService) CompleteWithHistory(ctx context.Context, history []dto.ChatMessage, message string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()

	contents := make([]*genai.Content, 0, len(history)+1)
	contents = append(contents, genai.NewContentFromText(generalAdvisorPersona, genai.RoleModel))
	for _, msg := range history {
		contents = append(contents, genai.NewContentFromText(msg.Content, contentRole(msg.Role)))
	}

	chat, err := s.client.Chats.Create(ctx,
		s.chatModel,
		&genai.GenerateContentConfig{
			MaxOutputTokens: s.maxOutputTokens,
		},
		contents,
	)
	if err != nil {
		s.recordFailure(ctx, s.chatModel, start, err)
		return GeneralAdviceFallback
	}

	result, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err == nil && result.Text() == "" {
		err = errEmptyCompletion
	}
	if err != nil {
		s.recordFailure(ctx, s.chatModel, start, err)
		return GeneralAdviceFallback
	}

	s.metrics.RecordCompletion(s.chatModel, time.Since(start), true)
	return result.Text()
}

// contentRole translates a UI message role into the Gemini role
// vocabulary. Anything other than the assistant speaks as the user.
func contentRole(role string) genai.Role {
	if role == dto.ChatRoleAssistant {
		return genai.RoleModel
	}
	return genai.RoleUser
}

func (s *GeminiService) recordFailure(ctx context.Context, model string, start time.Time, err error) {
	s.metrics.RecordCompletion(model, time.Since(start), false)
	s.logger.ErrorContext(ctx, "completion failed, returning fallback",
		"model", model,
		"error", err.Error(),
	)
}
