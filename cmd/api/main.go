package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ai-task-assistant/config"
	_ "ai-task-assistant/docs" // Swagger docs
	"ai-task-assistant/internal/assistant/usecase"
	"ai-task-assistant/internal/httpserver"
	"ai-task-assistant/pkg/llmprovider"
	"ai-task-assistant/pkg/log"
	"ai-task-assistant/pkg/ratelimit"
	"ai-task-assistant/pkg/sqlite"
)

// @title       AI Task Assistant API
// @description Answers questions about a user's tasks and proposes task breakdowns using a language-model backend.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 0. Optional .env for local runs
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Failed to load .env: ", err)
	}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database %s: %v", cfg.Database.Path, err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 4. LLM backend
	provider, err := llmprovider.NewProvider(ctx, llmprovider.ProviderConfig{
		Name:      cfg.LLM.Provider,
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM provider: %v", err)
		return
	}
	backend := llmprovider.NewManager(provider, &llmprovider.Config{
		Timeout:           cfg.LLM.Timeout,
		RequestsPerSecond: cfg.LLM.RequestsPerSecond,
	}, logger)
	logger.Infof(ctx, "LLM provider: %s (model=%s, timeout=%s)", backend.Name(), backend.Model(), cfg.LLM.Timeout)

	// 5. Rate governor
	governor, err := ratelimit.New(ratelimit.Config{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		MaxIdentities:     cfg.RateLimit.MaxIdentities,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize rate governor: %v", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Backend:     backend,
		Governor:    governor,
		Assistant: usecase.Config{
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
		},
		IdentityHeader: cfg.Auth.IdentityHeader,
		InternalKey:    cfg.Auth.InternalKey,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
