package handlers

import (
	"fmt"
	"net/http"
	"time"

	"budget-assistant/internal/config"
	"budget-assistant/internal/errors"
	"budget-assistant/internal/models"
	"budget-assistant/internal/repositories"
	"budget-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	cfg             *config.Config
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	historyRepo     repositories.HistoryRepositoryInterface
	settingsRepo    repositories.SettingsRepositoryInterface
	generator       services.SampleDataGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	cfg *config.Config,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	historyRepo repositories.HistoryRepositoryInterface,
	settingsRepo repositories.SettingsRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		cfg:             cfg,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		historyRepo:     historyRepo,
		settingsRepo:    settingsRepo,
		generator:       services.NewSampleDataGenerator(),
	}
}

// SeedBudgetData seeds realistic budget data for the current user
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - months: Number of months of history to generate (default: 3, max: 24)
//   - per_month: Number of expense transactions per month (default: 20, max: 200)
//
// Success Response: 200 OK
//   - message: Success message
//   - transactions_created: Number of transactions created
func (h *DevHandler) SeedBudgetData(c echo.Context) error {
	if !h.cfg.IsDevelopment() {
		return SendError(c, errors.SystemEnvironmentOnly)
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	months := getIntQueryParam(c, "months", 3)
	if months < 1 {
		months = 1
	}
	if months > 24 {
		months = 24
	}

	perMonth := getIntQueryParam(c, "per_month", 20)
	if perMonth < 1 {
		perMonth = 1
	}
	if perMonth > 200 {
		perMonth = 200
	}

	if err := h.settingsRepo.Upsert(&models.UserSettings{
		UserID:   userID,
		Currency: models.DefaultCurrency,
	}); err != nil {
		return SendSystemError(c, err)
	}

	for _, category := range h.generator.DefaultCategories(userID) {
		if err := h.categoryRepo.Create(&category); err != nil {
			return SendSystemError(c, err)
		}
	}

	transactions := h.generator.GenerateTransactions(userID, months, perMonth)
	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return SendSystemError(c, err)
	}

	monthHistory, yearHistory := h.generator.BuildHistory(userID, transactions)
	for i := range monthHistory {
		if err := h.historyRepo.UpsertMonthHistory(&monthHistory[i]); err != nil {
			return SendSystemError(c, err)
		}
	}
	for i := range yearHistory {
		if err := h.historyRepo.UpsertYearHistory(&yearHistory[i]); err != nil {
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "budget data seeded successfully",
		"transactions_created": len(transactions),
		"months":               months,
		"seeded_at":            time.Now().UTC().Format(time.RFC3339),
	})
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
