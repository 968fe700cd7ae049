package services

import (
	"errors"
	"fmt"
	"log/slog"

	"budget-assistant/internal/dto"
	"budget-assistant/internal/models"
	"budget-assistant/internal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	settingsRepo    repositories.SettingsRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	sampleData      SampleDataGeneratorInterface
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	settingsRepo repositories.SettingsRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	sampleData SampleDataGeneratorInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		settingsRepo:    settingsRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		sampleData:      sampleData,
		logger:          logger,
	}
}

// Register creates a new user account with default settings and a
// starter category set
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleCustomer,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Non-critical: the user can still chat without seeded defaults
	if err := s.settingsRepo.Upsert(&models.UserSettings{
		UserID:   user.ID,
		Currency: models.DefaultCurrency,
	}); err != nil {
		s.logger.Warn("failed to create default settings",
			"error", err,
			"user_id", user.ID)
	}

	for _, category := range s.sampleData.DefaultCategories(user.ID) {
		if err := s.categoryRepo.Create(&category); err != nil {
			s.logger.Warn("failed to create default category",
				"error", err,
				"user_id", user.ID,
				"category", category.Name)
		}
	}

	return user, nil
}

// Login authenticates a user and returns an access token
func (s *AuthService) Login(req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Security: Never reveal user existence via error messages
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	user.UpdateLastLogin()
	if err := s.userRepo.UpdateLastLogin(user); err != nil {
		// Non-critical: login timestamp failure shouldn't block login
		s.logger.Warn("failed to update last login",
			"error", err,
			"user_id", user.ID)
	}

	token, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return user, &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
