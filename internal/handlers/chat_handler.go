package handlers

import (
	"net/http"

	"budget-assistant/internal/dto"
	"budget-assistant/internal/errors"
	"budget-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// MaxHistoryMessages caps how much conversation history a single
// request may carry. Older turns past the cap add token cost without
// improving answers.
const MaxHistoryMessages = 50

// ChatHandler handles the assistant chat endpoint
type ChatHandler struct {
	chatService services.ChatServiceInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService services.ChatServiceInterface) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat handles one assistant conversation turn
// @Summary Send a message to the budget assistant
// @Description Answer a message with either a data-grounded budget response or general financial advice
// @Tags Chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message and optional conversation history"
// @Success 200 {object} dto.ChatResponse "Assistant response"
// @Failure 400 {object} errors.ErrorResponse "Message missing - CHAT_001, or history too long - CHAT_002"
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Router /chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req dto.ChatRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	// Message validation runs before the identity check
	if req.Message == "" {
		return SendError(c, errors.ChatMessageRequired)
	}

	if len(req.History) > MaxHistoryMessages {
		return SendError(c, errors.ChatHistoryTooLong)
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	response := h.chatService.Respond(c.Request().Context(), userID, req.Message, req.History)

	return c.JSON(http.StatusOK, dto.ChatResponse{
		Response: response,
	})
}
