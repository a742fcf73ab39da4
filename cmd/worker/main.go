package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chorechum/config"
	choreRepo "chorechum/internal/chore/repository/sqlite"
	choreUC "chorechum/internal/chore/usecase"
	householdRepo "chorechum/internal/household/repository/sqlite"
	householdUC "chorechum/internal/household/usecase"
	"chorechum/internal/reminder"
	"chorechum/pkg/log"
	"chorechum/pkg/sqlite"
)

// main is the entry point for the background reminder worker.
// It shares the API's SQLite database and notifies members about chores
// coming due on the configured cron schedule.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting reminder worker...")

	if !cfg.Reminder.Enabled {
		logger.Warn(ctx, "Reminders disabled by config, exiting")
		return
	}

	// Infrastructure
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

	// UseCases
	hUC := householdUC.New(logger, householdRepo.New(db, logger), householdUC.Options{
		DefaultTimezone: cfg.Household.DefaultTimezone,
	})
	cUC := choreUC.New(logger, choreRepo.New(db, logger), hUC, choreUC.Options{
		DefaultPoints: cfg.Scoring.PointsPerChore,
	})

	// Reminder job
	svc := reminder.NewService(logger, cUC, reminder.NewLogNotifier(logger), reminder.Config{
		Schedule:    cfg.Reminder.Schedule,
		Window:      cfg.Reminder.Window,
		Concurrency: cfg.Reminder.Concurrency,
	})
	if err := svc.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start reminder service: ", err)
		return
	}

	logger.Infof(ctx, "Reminder worker running on %q. Waiting for shutdown signal...", cfg.Reminder.Schedule)
	<-ctx.Done()
	svc.Stop()
	logger.Info(ctx, "Reminder worker stopped gracefully")
}
