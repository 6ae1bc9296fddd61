package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ashpazyar/backend/config"
	"github.com/ashpazyar/backend/internal/api"
	"github.com/ashpazyar/backend/internal/database"
	"github.com/ashpazyar/backend/internal/llm"
	"github.com/ashpazyar/backend/internal/middleware"
	"github.com/ashpazyar/backend/internal/pkg/logging"
	"github.com/ashpazyar/backend/internal/router"
	"github.com/ashpazyar/backend/internal/server"
	"github.com/ashpazyar/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.App.LogLevel, !cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	llmService := llm.NewService(buildProviders(cfg, logger))
	if llmService.MockMode() {
		logger.Warn("no llm credentials configured, generation endpoints serve sample data")
	}

	authService := service.NewAuthService(db, cfg.Auth.JWTSecret)
	oauthService := service.NewGoogleOAuthService(db, cfg.Google)
	savedService := service.NewSavedRecipeService(db)

	handlers := router.Handlers{
		Health: api.NewHealthHandler(db),
		LLM:    api.NewLLMHandler(llmService, logger),
		Auth:   api.NewAuthHandler(authService, cfg.Auth.SecureCookie, logger),
		OAuth:  api.NewOAuthHandler(oauthService, authService, cfg.Server.FrontendURL, cfg.Auth.SecureCookie, logger),
		Saved:  api.NewSavedRecipeHandler(savedService, logger),
	}

	opts := router.Options{AllowedOrigins: cfg.Server.AllowedOrigins}
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		opts.RateLimiter = middleware.NewGenerationRateLimiter(client)
		logger.Info("rate limiting enabled", zap.String("redis", cfg.Redis.Addr))
	}

	engine := router.Setup(handlers, authService, logger, opts)

	srv := server.New(cfg.Server, engine, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

// buildProviders turns configured credentials into providers. A missing
// key leaves that provider nil.
func buildProviders(cfg *config.Config, logger *zap.Logger) (llm.Provider, llm.Provider, *zap.Logger) {
	var groq, gemini llm.Provider

	if cfg.Groq.APIKey != "" {
		groq = llm.NewGroqProvider(cfg.Groq.APIKey, cfg.Groq.APIURL, cfg.Groq.Model, timeoutOrDefault(cfg.Groq.Timeout))
		logger.Info("chat-completions provider configured")
	}
	if cfg.Gemini.APIKey != "" {
		gemini = llm.NewGeminiProvider(cfg.Gemini.APIKey, cfg.Gemini.APIURL, cfg.Gemini.Model, timeoutOrDefault(cfg.Gemini.Timeout))
		logger.Info("generate-content provider configured")
	}

	return groq, gemini, logger
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return 60 * time.Second
	}
	return d
}
