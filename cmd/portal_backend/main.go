package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CareSetu/health_portal_app/internal/adapters/database/mongodb"
	"github.com/CareSetu/health_portal_app/internal/adapters/mail"
	"github.com/CareSetu/health_portal_app/internal/adapters/sessionstore"
	"github.com/CareSetu/health_portal_app/internal/core/services"
	"github.com/CareSetu/health_portal_app/internal/handlers"
	"github.com/CareSetu/health_portal_app/internal/middleware"
	"github.com/CareSetu/health_portal_app/internal/platform/config"
	"github.com/CareSetu/health_portal_app/internal/scheduler"
	"github.com/CareSetu/health_portal_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Health Portal API
// @version 1.0
// @description Backend for the CareSetu health portal.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey SessionAuth
// @in cookie
// @name hpsid
// @description Opaque session cookie set by login.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect to MongoDB
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := database.NewMongoDatabase(connectCtx, cfg.MongoURL, cfg.MongoDBName)
	cancelConnect()
	if err != nil {
		logger.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseMongoDatabase(context.Background(), db)
	logger.Info("MongoDB connection established.")

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	err = mongodb.EnsureIndexes(indexCtx, db)
	cancelIndex()
	if err != nil {
		logger.Error("Failed to ensure indexes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire adapters and services
	repos := mongodb.NewRepositoryProvider(db)

	sessions := sessionstore.NewMemoryStore(cfg.SessionTTL)
	defer sessions.Stop()

	mailer := mail.NewSMTPSender(cfg)

	serviceContainer := services.NewServiceContainer(cfg, repos, sessions, mailer)

	// Start the daily reminder scheduler
	reminderScheduler, err := scheduler.NewReminderScheduler(cfg.ReminderCronSpec, serviceContainer.Reminder, logger)
	if err != nil {
		logger.Error("Failed to initialize reminder scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}
	reminderScheduler.Start()
	defer reminderScheduler.Stop()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		// Credentialed cookie auth forbids a wildcard origin.
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	// Shut down cleanly on SIGINT/SIGTERM so the deferred cleanup runs.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("Shutting down", slog.String("signal", sig.String()))
		reminderScheduler.Stop()
		sessions.Stop()
		database.CloseMongoDatabase(context.Background(), db)
		os.Exit(0)
	}()

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
