package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chorechum/config"
	_ "chorechum/docs" // Swagger docs
	"chorechum/internal/httpserver"
	"chorechum/internal/leaderboard"
	"chorechum/internal/middleware"
	"chorechum/pkg/log"
	"chorechum/pkg/sqlite"
)

// @title       ChoreChum API
// @description Household chores with recurrence, smart input parsing and a points leaderboard.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
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

	logger.Info(ctx, "Starting ChoreChum API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Connect(ctx, cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite: ", err)
		return
	}
	defer sqlite.Disconnect(db)

	if err := sqlite.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate SQLite: ", err)
		return
	}
	logger.Infof(ctx, "SQLite ready at %s", cfg.SQLite.Path)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		DB:              db,
		Domain: httpserver.DomainConfig{
			DefaultTimezone:   cfg.Household.DefaultTimezone,
			Scoring:           leaderboard.Scoring{StreakBonus: cfg.Scoring.StreakBonus},
			PointsPerChore:    cfg.Scoring.PointsPerChore,
			LeaderboardWindow: cfg.Scoring.LeaderboardWindow,
			ParseCacheTTL:     cfg.Household.ParseCacheTTL,
			ParseCacheSize:    cfg.Household.ParseCacheSize,
			RateLimit: middleware.RateLimitConfig{
				PerMinute: cfg.RateLimit.ParsePerMin,
				Burst:     cfg.RateLimit.Burst,
				MaxKeys:   cfg.RateLimit.MaxKeys,
				TTL:       cfg.RateLimit.TTL,
			},
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
