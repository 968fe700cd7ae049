package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"budget-assistant/internal/database"
	"budget-assistant/internal/models"
	"budget-assistant/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetDataServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service *BudgetDataService
	userID  uuid.UUID
}

func TestBudgetDataServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetDataServiceTestSuite))
}

func (s *BudgetDataServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	user := database.CreateTestUser(s.T(), s.db, "budget@example.com")
	s.userID = user.ID

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewBudgetDataService(
		repositories.NewTransactionRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		repositories.NewHistoryRepository(s.db.DB),
		repositories.NewSettingsRepository(s.db.DB),
		NewNoopMetrics(),
		logger,
	)
}

func (s *BudgetDataServiceTestSuite) seedTransaction(amount float64, txnType, category string, date time.Time) {
	txn := &models.Transaction{
		UserID:   s.userID,
		Amount:   decimal.NewFromFloat(amount),
		Type:     txnType,
		Category: category,
		Date:     date,
	}
	s.Require().NoError(s.db.Create(txn).Error)
}

func (s *BudgetDataServiceTestSuite) TestFetch_TransactionsOnly() {
	s.seedTransaction(50.00, models.TransactionTypeExpense, "Groceries", time.Now())
	s.seedTransaction(3000.00, models.TransactionTypeIncome, "Salary", time.Now())

	data, err := s.service.Fetch(context.Background(), s.userID, []models.DataCategory{models.DataCategoryTransactions})

	s.Require().NoError(err)
	s.Len(data.RecentTransactions, 2)
	s.Len(data.TransactionStats, 2)
	s.Nil(data.Categories)
	s.Nil(data.UserSettings)
	s.Nil(data.CurrentMonthHistory)
}

func (s *BudgetDataServiceTestSuite) TestFetch_RecentTransactionsLimitedAndOrdered() {
	for i := 0; i < RecentTransactionLimit+5; i++ {
		s.seedTransaction(10.00+float64(i), models.TransactionTypeExpense, "Dining", time.Now().AddDate(0, 0, -i))
	}

	data, err := s.service.Fetch(context.Background(), s.userID, []models.DataCategory{models.DataCategoryTransactions})

	s.Require().NoError(err)
	s.Len(data.RecentTransactions, RecentTransactionLimit)
	for i := 1; i < len(data.RecentTransactions); i++ {
		s.False(data.RecentTransactions[i].Date.After(data.RecentTransactions[i-1].Date), "transactions must be newest first")
	}
}

func (s *BudgetDataServiceTestSuite) TestFetch_SummaryExpandsToEverything() {
	s.seedTransaction(25.00, models.TransactionTypeExpense, "Dining", time.Now())
	s.Require().NoError(s.db.Create(&models.Category{
		UserID: s.userID,
		Name:   "Dining",
		Icon:   "🍔",
		Type:   models.TransactionTypeExpense,
	}).Error)
	s.Require().NoError(s.db.Create(&models.UserSettings{
		UserID:   s.userID,
		Currency: "EUR",
	}).Error)

	data, err := s.service.Fetch(context.Background(), s.userID, []models.DataCategory{models.DataCategorySummary})

	s.Require().NoError(err)
	s.NotEmpty(data.RecentTransactions)
	s.NotEmpty(data.TransactionStats)
	s.NotEmpty(data.Categories)
	s.NotEmpty(data.CategorySpending)
	s.Require().NotNil(data.UserSettings)
	s.Equal("EUR", data.UserSettings.Currency)
}

func (s *BudgetDataServiceTestSuite) TestFetch_MonthHistoryWindows() {
	// Pin the clock to mid-March so the windows are unambiguous
	s.service.now = func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	}

	s.Require().NoError(s.db.Create(&models.MonthHistory{
		UserID: s.userID, Day: 3, Month: 3, Year: 2026,
		Expense: decimal.NewFromInt(120),
	}).Error)
	s.Require().NoError(s.db.Create(&models.MonthHistory{
		UserID: s.userID, Day: 20, Month: 2, Year: 2026,
		Expense: decimal.NewFromInt(80),
	}).Error)

	data, err := s.service.Fetch(context.Background(), s.userID, []models.DataCategory{models.DataCategoryMonthHistory})

	s.Require().NoError(err)
	s.Require().Len(data.CurrentMonthHistory, 1)
	s.Equal(3, data.CurrentMonthHistory[0].Month)
	s.Require().Len(data.PreviousMonthHistory, 1)
	s.Equal(2, data.PreviousMonthHistory[0].Month)
}

func (s *BudgetDataServiceTestSuite) TestFetch_JanuaryRollsBackToPreviousDecember() {
	s.service.now = func() time.Time {
		return time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	}

	s.Require().NoError(s.db.Create(&models.MonthHistory{
		UserID: s.userID, Day: 28, Month: 12, Year: 2025,
		Income: decimal.NewFromInt(3000),
	}).Error)

	data, err := s.service.Fetch(context.Background(), s.userID, []models.DataCategory{models.DataCategoryMonthHistory})

	s.Require().NoError(err)
	s.Require().Len(data.PreviousMonthHistory, 1)
	s.Equal(12, data.PreviousMonthHistory[0].Month)
	s.Equal(2025, data.PreviousMonthHistory[0].Year)
}

func (s *BudgetDataServiceTestSuite) TestFetch_YearHistoryBothYears() {
	s.service.now = func() time.Time {
		return time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	}

	s.Require().NoError(s.db.Create(&models.YearHistory{
		UserID: s.userID, Month: 5, Year: 2026,
		Expense: decimal.NewFromInt(900),
	}).Error)
	s.Require().NoError(s.db.Create(&models.YearHistory{
		UserID: s.userID, Month: 11, Year: 2025,
		Expense: decimal.NewFromInt(700),
	}).Error)

	data, err := s.service.Fetch(context.Background(), s.userID, []models.DataCategory{models.DataCategoryYearHistory})

	s.Require().NoError(err)
	s.Require().Len(data.CurrentYearHistory, 1)
	s.Equal(2026, data.CurrentYearHistory[0].Year)
	s.Require().Len(data.PreviousYearHistory, 1)
	s.Equal(2025, data.PreviousYearHistory[0].Year)
}

func (s *BudgetDataServiceTestSuite) TestFetch_ScopedToRequestingUser() {
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	s.Require().NoError(s.db.Create(&models.Transaction{
		UserID:   other.ID,
		Amount:   decimal.NewFromInt(999),
		Type:     models.TransactionTypeExpense,
		Category: "Shopping",
		Date:     time.Now(),
	}).Error)

	data, err := s.service.Fetch(context.Background(), s.userID, []models.DataCategory{models.DataCategoryTransactions})

	s.Require().NoError(err)
	s.Empty(data.RecentTransactions)
	s.Empty(data.TransactionStats)
}

func (s *BudgetDataServiceTestSuite) TestFetch_MissingSettingsDegradesField() {
	s.seedTransaction(10.00, models.TransactionTypeExpense, "Dining", time.Now())

	data, err := s.service.Fetch(context.Background(), s.userID, []models.DataCategory{
		models.DataCategoryTransactions,
		models.DataCategoryUserSettings,
	})

	s.Require().NoError(err)
	s.Nil(data.UserSettings, "missing settings degrade to absent")
	s.NotEmpty(data.RecentTransactions, "other fields still populate")
}

func (s *BudgetDataServiceTestSuite) TestFetch_RepositoryFailureDegradesField() {
	s.service.transactionRepo = &failingTransactionRepo{}
	s.Require().NoError(s.db.Create(&models.Category{
		UserID: s.userID,
		Name:   "Travel",
		Icon:   "✈️",
		Type:   models.TransactionTypeExpense,
	}).Error)

	data, err := s.service.Fetch(context.Background(), s.userID, []models.DataCategory{
		models.DataCategoryTransactions,
		models.DataCategoryCategories,
	})

	s.Require().NoError(err, "query failures must not abort the fan-out")
	s.Nil(data.RecentTransactions)
	s.Nil(data.TransactionStats)
	s.Nil(data.CategorySpending)
	s.NotEmpty(data.Categories, "healthy branches still populate")
}

// failingTransactionRepo simulates a transaction store outage
type failingTransactionRepo struct{}

var errStoreDown = errors.New("store down")

func (r *failingTransactionRepo) Create(*models.Transaction) error       { return errStoreDown }
func (r *failingTransactionRepo) CreateBatch([]models.Transaction) error { return errStoreDown }
func (r *failingTransactionRepo) GetRecentByUserID(uuid.UUID, int) ([]models.Transaction, error) {
	return nil, errStoreDown
}
func (r *failingTransactionRepo) GetTotalsByType(uuid.UUID) ([]models.TransactionTypeTotal, error) {
	return nil, errStoreDown
}
func (r *failingTransactionRepo) GetSpendingByCategory(uuid.UUID) ([]models.CategorySpending, error) {
	return nil, errStoreDown
}
