package repositories

import (
	"testing"

	"budget-assistant/internal/database"
	"budget-assistant/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HistoryRepositoryTestSuite struct {
	suite.Suite
	db     *database.DB
	repo   HistoryRepositoryInterface
	userID uuid.UUID
}

func TestHistoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(HistoryRepositoryTestSuite))
}

func (s *HistoryRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewHistoryRepository(s.db.DB)
	s.userID = database.CreateTestUser(s.T(), s.db, "history@example.com").ID
}

func (s *HistoryRepositoryTestSuite) TestUpsertMonthHistory_ReplacesExistingRow() {
	row := &models.MonthHistory{
		UserID: s.userID, Day: 5, Month: 3, Year: 2026,
		Expense: decimal.NewFromInt(100),
	}
	s.Require().NoError(s.repo.UpsertMonthHistory(row))

	updated := &models.MonthHistory{
		UserID: s.userID, Day: 5, Month: 3, Year: 2026,
		Income:  decimal.NewFromInt(50),
		Expense: decimal.NewFromInt(175),
	}
	s.Require().NoError(s.repo.UpsertMonthHistory(updated))

	rows, err := s.repo.GetMonthHistory(s.userID, 3, 2026)
	s.Require().NoError(err)
	s.Require().Len(rows, 1, "conflicting upsert must not create a second row")
	s.True(rows[0].Expense.Equal(decimal.NewFromInt(175)))
	s.True(rows[0].Income.Equal(decimal.NewFromInt(50)))
}

func (s *HistoryRepositoryTestSuite) TestGetMonthHistory_OrderedByDay() {
	for _, day := range []int{20, 3, 11} {
		s.Require().NoError(s.repo.UpsertMonthHistory(&models.MonthHistory{
			UserID: s.userID, Day: day, Month: 6, Year: 2026,
			Expense: decimal.NewFromInt(int64(day)),
		}))
	}

	rows, err := s.repo.GetMonthHistory(s.userID, 6, 2026)

	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal(3, rows[0].Day)
	s.Equal(11, rows[1].Day)
	s.Equal(20, rows[2].Day)
}

func (s *HistoryRepositoryTestSuite) TestUpsertYearHistory_ReplacesExistingRow() {
	s.Require().NoError(s.repo.UpsertYearHistory(&models.YearHistory{
		UserID: s.userID, Month: 7, Year: 2026,
		Expense: decimal.NewFromInt(400),
	}))
	s.Require().NoError(s.repo.UpsertYearHistory(&models.YearHistory{
		UserID: s.userID, Month: 7, Year: 2026,
		Expense: decimal.NewFromInt(450),
	}))

	rows, err := s.repo.GetYearHistory(s.userID, 2026)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.True(rows[0].Expense.Equal(decimal.NewFromInt(450)))
}

func (s *HistoryRepositoryTestSuite) TestGetYearHistory_ScopedToYearAndUser() {
	s.Require().NoError(s.repo.UpsertYearHistory(&models.YearHistory{
		UserID: s.userID, Month: 1, Year: 2025,
		Income: decimal.NewFromInt(1000),
	}))
	s.Require().NoError(s.repo.UpsertYearHistory(&models.YearHistory{
		UserID: s.userID, Month: 1, Year: 2026,
		Income: decimal.NewFromInt(2000),
	}))

	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	s.Require().NoError(s.repo.UpsertYearHistory(&models.YearHistory{
		UserID: other.ID, Month: 1, Year: 2026,
		Income: decimal.NewFromInt(9999),
	}))

	rows, err := s.repo.GetYearHistory(s.userID, 2026)

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.True(rows[0].Income.Equal(decimal.NewFromInt(2000)))
}
