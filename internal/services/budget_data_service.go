package services

import (
	"context"
	"log/slog"
	"time"

	"budget-assistant/internal/models"
	"budget-assistant/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RecentTransactionLimit is how many of the newest transactions are
// included in the aggregate when transactions are requested.
const RecentTransactionLimit = 10

// BudgetDataService fetches the requested subsets of one user's budget
// data. All queries for a request run concurrently and each writes a
// disjoint field of the aggregate, so no synchronization is needed
// beyond the final join. A failing query degrades its own field to
// absent instead of aborting the rest.
type BudgetDataService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	historyRepo     repositories.HistoryRepositoryInterface
	settingsRepo    repositories.SettingsRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger

	// now is replaceable in tests to pin the calendar windows
	now func() time.Time
}

// NewBudgetDataService creates a new budget data service
func NewBudgetDataService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	historyRepo repositories.HistoryRepositoryInterface,
	settingsRepo repositories.SettingsRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *BudgetDataService {
	return &BudgetDataService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		historyRepo:     historyRepo,
		settingsRepo:    settingsRepo,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// Fetch retrieves the aggregate for the given categories, scoped to a
// single user. The summary category expands to the union of all
// concrete categories.
func (s *BudgetDataService) Fetch(ctx context.Context, userID uuid.UUID, categories []models.DataCategory) (*models.BudgetData, error) {
	wanted := expandCategories(categories)

	start := s.now()
	data := &models.BudgetData{}
	g, ctx := errgroup.WithContext(ctx)

	if wanted[models.DataCategoryTransactions] {
		g.Go(func() error {
			transactions, err := s.transactionRepo.GetRecentByUserID(userID, RecentTransactionLimit)
			if err != nil {
				s.recordFetchFailure(ctx, "recentTransactions", err)
				return nil
			}
			data.RecentTransactions = transactions
			return nil
		})
		g.Go(func() error {
			totals, err := s.transactionRepo.GetTotalsByType(userID)
			if err != nil {
				s.recordFetchFailure(ctx, "transactionStats", err)
				return nil
			}
			data.TransactionStats = totals
			return nil
		})
	}

	if wanted[models.DataCategoryCategories] {
		g.Go(func() error {
			categories, err := s.categoryRepo.GetByUserID(userID)
			if err != nil {
				s.recordFetchFailure(ctx, "categories", err)
				return nil
			}
			data.Categories = categories
			return nil
		})
		g.Go(func() error {
			spending, err := s.transactionRepo.GetSpendingByCategory(userID)
			if err != nil {
				s.recordFetchFailure(ctx, "categorySpending", err)
				return nil
			}
			data.CategorySpending = spending
			return nil
		})
	}

	if wanted[models.DataCategoryMonthHistory] {
		month, year := models.CurrentPeriod(s.now())
		prevMonth, prevYear := models.PreviousMonth(month, year)

		g.Go(func() error {
			history, err := s.historyRepo.GetMonthHistory(userID, month, year)
			if err != nil {
				s.recordFetchFailure(ctx, "currentMonthHistory", err)
				return nil
			}
			data.CurrentMonthHistory = history
			return nil
		})
		g.Go(func() error {
			history, err := s.historyRepo.GetMonthHistory(userID, prevMonth, prevYear)
			if err != nil {
				s.recordFetchFailure(ctx, "previousMonthHistory", err)
				return nil
			}
			data.PreviousMonthHistory = history
			return nil
		})
	}

	if wanted[models.DataCategoryYearHistory] {
		year := s.now().Year()

		g.Go(func() error {
			history, err := s.historyRepo.GetYearHistory(userID, year)
			if err != nil {
				s.recordFetchFailure(ctx, "currentYearHistory", err)
				return nil
			}
			data.CurrentYearHistory = history
			return nil
		})
		g.Go(func() error {
			history, err := s.historyRepo.GetYearHistory(userID, year-1)
			if err != nil {
				s.recordFetchFailure(ctx, "previousYearHistory", err)
				return nil
			}
			data.PreviousYearHistory = history
			return nil
		})
	}

	if wanted[models.DataCategoryUserSettings] {
		g.Go(func() error {
			settings, err := s.settingsRepo.GetByUserID(userID)
			if err != nil {
				s.recordFetchFailure(ctx, "userSettings", err)
				return nil
			}
			data.UserSettings = settings
			return nil
		})
	}

	// Branches never return errors; Wait is the fan-in barrier
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.RecordFetchDuration(time.Since(start))

	return data, nil
}

func (s *BudgetDataService) recordFetchFailure(ctx context.Context, field string, err error) {
	s.metrics.RecordFetchFailure(field)
	s.logger.WarnContext(ctx, "budget data query failed, degrading field",
		"field", field,
		"error", err.Error(),
	)
}

// expandCategories resolves the requested category set into the
// concrete categories to fetch, expanding summary into all of them.
func expandCategories(categories []models.DataCategory) map[models.DataCategory]bool {
	wanted := make(map[models.DataCategory]bool, len(categories))
	for _, category := range categories {
		if category == models.DataCategorySummary {
			for _, c := range models.AllDataCategories() {
				wanted[c] = true
			}
			return wanted
		}
		wanted[category] = true
	}
	return wanted
}
