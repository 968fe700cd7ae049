package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budget-assistant/internal/config"
	"budget-assistant/internal/database"
	"budget-assistant/internal/handlers"
	custommw "budget-assistant/internal/middleware"
	"budget-assistant/internal/repositories"
	"budget-assistant/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	historyRepo := repositories.NewHistoryRepository(db.DB)
	settingsRepo := repositories.NewSettingsRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService()
	sampleData := services.NewSampleDataGenerator()
	authService := services.NewAuthService(
		userRepo, categoryRepo, settingsRepo,
		passwordService, tokenService, sampleData, logger,
	)

	geminiService, err := services.NewGeminiService(context.Background(), &cfg.Gemini, metrics, logger)
	if err != nil {
		logger.Error("Failed to initialize Gemini client", "error", err)
		os.Exit(1)
	}

	budgetDataService := services.NewBudgetDataService(
		transactionRepo, categoryRepo, historyRepo, settingsRepo, metrics, logger,
	)
	ragService := services.NewBudgetRAGService(budgetDataService, geminiService, logger)
	chatService := services.NewChatService(ragService, geminiService, metrics)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(chatService)
	devHandler := handlers.NewDevHandler(cfg, transactionRepo, categoryRepo, historyRepo, settingsRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.PanicRecovery())
	e.Use(custommw.RequestID())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Routes
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/chat", chatHandler.Chat, custommw.RequireAuth(tokenService))
	api.POST("/dev/seed", devHandler.SeedBudgetData, custommw.RequireAuth(tokenService))

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = 60 * time.Second
	e.Server.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	address := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("Starting budget assistant server",
		"address", address,
		"environment", cfg.Server.Environment,
	)
	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "address", address)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
