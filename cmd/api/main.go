package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Application Layer
	appService "locationreminder/internal/application/service"

	// Domain Layer
	"locationreminder/internal/domain/geofence"
	"locationreminder/internal/domain/repository"

	// Infrastructure Layer
	"locationreminder/internal/infrastructure/database"
	"locationreminder/internal/infrastructure/database/memory"
	"locationreminder/internal/infrastructure/dispatch"
	lineClient "locationreminder/internal/infrastructure/line"
	"locationreminder/internal/infrastructure/scheduler"

	// Interfaces Layer
	"locationreminder/internal/interfaces/api/handler"
	"locationreminder/internal/interfaces/api/router"

	// Packages
	"locationreminder/internal/pkg/config"
	appLogger "locationreminder/internal/pkg/logger"

	"gorm.io/gorm"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, schedulerService appService.SchedulerService, pool *dispatch.Pool, db *gorm.DB, appLog appLogger.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	appLog.Info("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first so no flush runs against a closing store
	schedulerService.Stop()
	appLog.Info("Scheduler stopped.")

	// The server gets 5 seconds to finish the requests it is handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Server forced to shutdown", err)
	}

	pool.Close()
	appLog.Info("Background pool drained.")

	if err := database.Close(db); err != nil {
		appLog.Error("Error closing database", err)
	} else {
		appLog.Info("Database connection closed.")
	}

	appLog.Info("Server exiting")
	done <- true
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "location reminders: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Configuration ---
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return err
	}

	appLog, err := appLogger.New(appLogger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync(appLog) }()
	appLog.Info("Logger initialized.")

	// --- Infrastructure ---
	pool, err := dispatch.NewPool(cfg.Dispatch.Workers)
	if err != nil {
		return err
	}

	var (
		db           *gorm.DB
		reminderRepo repository.ReminderDataSource
		userRepo     repository.UserRepository
	)
	if cfg.Database.Driver == config.DriverMemory {
		reminderRepo = memory.NewReminderDataSource()
		userRepo = memory.NewUserRepository()
		appLog.Warn("Using in-memory storage, data is lost on restart.")
	} else {
		db, err = database.Open(cfg.Database, appLog)
		if err != nil {
			return err
		}
		reminderRepo = database.NewReminderRepository(db, pool)
		userRepo = database.NewUserRepository(db)
	}
	appLog.Info("Database and repositories initialized.")

	var notifier appService.Notifier = appService.NewLogNotifier(appLog)
	var line *lineClient.Client
	if cfg.Line.Enabled {
		line, err = lineClient.NewClient(cfg.Line, appLog)
		if err != nil {
			return err
		}
		notifier = line
	} else {
		appLog.Warn("LINE integration disabled, notifications are only logged.")
	}
	cronScheduler := scheduler.NewScheduler(appLog)

	// --- Application Services ---
	userSvc := appService.NewUserService(userRepo, appLog)
	notificationSvc := appService.NewNotificationService(notifier, userSvc, cfg.Notify.AdminUserID, appLog)
	locationSvc := appService.NewLocationService(reminderRepo, geofence.NewTracker(), cfg.Geofence.RadiusMeters, notificationSvc, appLog)
	schedulerSvc := appService.NewSchedulerService(cronScheduler, appLog)
	appLog.Info("Application services initialized.")

	if err := schedulerSvc.ScheduleNotificationFlush(cfg.Notify.FlushInterval, notificationSvc.Flush); err != nil {
		schedulerSvc.Stop()
		return err
	}

	// --- API Handlers ---
	routerCfg := &router.Config{
		ReminderHandler: handler.NewReminderHandler(reminderRepo, appLog),
		LocationHandler: handler.NewLocationHandler(locationSvc, appLog),
		Logger:          appLog,
	}
	if line != nil {
		routerCfg.LineHandler = handler.NewLineHandler(line, userSvc, locationSvc, reminderRepo, cfg.Notify.AdminUserID, appLog)
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      echoRouter,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, schedulerSvc, pool, db, appLog, done)

	appLog.Info(fmt.Sprintf("Server starting on %s", apiServer.Addr))
	if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		appLog.Error("HTTP server ListenAndServe error", err)
		return fmt.Errorf("http server error: %w", err)
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
	return nil
}
