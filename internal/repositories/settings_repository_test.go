package repositories

import (
	"testing"

	"budget-assistant/internal/database"
	"budget-assistant/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SettingsRepositoryTestSuite struct {
	suite.Suite
	db     *database.DB
	repo   SettingsRepositoryInterface
	userID uuid.UUID
}

func TestSettingsRepositorySuite(t *testing.T) {
	suite.Run(t, new(SettingsRepositoryTestSuite))
}

func (s *SettingsRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSettingsRepository(s.db.DB)
	s.userID = database.CreateTestUser(s.T(), s.db, "settings@example.com").ID
}

func (s *SettingsRepositoryTestSuite) TestGetByUserID_NotFound() {
	settings, err := s.repo.GetByUserID(s.userID)

	s.Nil(settings)
	s.ErrorIs(err, ErrSettingsNotFound)
}

func (s *SettingsRepositoryTestSuite) TestUpsert_CreatesThenUpdatesCurrency() {
	s.Require().NoError(s.repo.Upsert(&models.UserSettings{
		UserID:   s.userID,
		Currency: models.DefaultCurrency,
	}))

	settings, err := s.repo.GetByUserID(s.userID)
	s.Require().NoError(err)
	s.Equal("USD", settings.Currency)

	s.Require().NoError(s.repo.Upsert(&models.UserSettings{
		UserID:   s.userID,
		Currency: "EUR",
	}))

	settings, err = s.repo.GetByUserID(s.userID)
	s.Require().NoError(err)
	s.Equal("EUR", settings.Currency)

	var count int64
	s.Require().NoError(s.db.Model(&models.UserSettings{}).
		Where("user_id = ?", s.userID).
		Count(&count).Error)
	s.EqualValues(1, count, "upsert must keep a single row per user")
}

func (s *SettingsRepositoryTestSuite) TestUpsert_IndependentPerUser() {
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	s.Require().NoError(s.repo.Upsert(&models.UserSettings{UserID: s.userID, Currency: "USD"}))
	s.Require().NoError(s.repo.Upsert(&models.UserSettings{UserID: other.ID, Currency: "GBP"}))

	mine, err := s.repo.GetByUserID(s.userID)
	s.Require().NoError(err)
	s.Equal("USD", mine.Currency)

	theirs, err := s.repo.GetByUserID(other.ID)
	s.Require().NoError(err)
	s.Equal("GBP", theirs.Currency)
}
