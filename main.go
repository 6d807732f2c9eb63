package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/crm-backend/cache"
	"github.com/yeremiapane/crm-backend/config"
	"github.com/yeremiapane/crm-backend/database"
	"github.com/yeremiapane/crm-backend/events"
	"github.com/yeremiapane/crm-backend/middlewares"
	"github.com/yeremiapane/crm-backend/monitoring"
	"github.com/yeremiapane/crm-backend/router"
	"github.com/yeremiapane/crm-backend/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	utils.ConfigureLogger(cfg.LogLevel, cfg.LogFormat)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	opts := router.Options{Hub: events.NewHub()}

	if cfg.Redis.Enabled() {
		dashboardCache, err := cache.NewRedisDashboardCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.CacheTTL)
		if err != nil {
			utils.ErrorLogger.Printf("Dashboard cache disabled: %v", err)
		} else {
			defer dashboardCache.Close()
			opts.Cache = dashboardCache
			utils.InfoLogger.Printf("Dashboard cache enabled at %s (ttl %s)", cfg.Redis.Addr, cfg.Redis.CacheTTL)
		}
	}

	if cfg.Kafka.Enabled() {
		publisher, err := events.NewKafkaPublisher(cfg.Kafka.Broker, cfg.Kafka.Topic)
		if err != nil {
			utils.ErrorLogger.Printf("Kafka events disabled: %v", err)
		} else {
			defer publisher.Close()
			opts.Publisher = publisher
			utils.InfoLogger.Printf("Publishing events to Kafka topic %s", cfg.Kafka.Topic)
		}
	}

	if cfg.SentryDSN != "" {
		if err := utils.InitSentry(cfg.SentryDSN, cfg.AppEnv, cfg.AppVersion); err != nil {
			utils.ErrorLogger.Printf("Sentry disabled: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
			opts.Sentry = true
		}
	}

	if cfg.MetricsEnabled {
		opts.Metrics = monitoring.NewMetrics()
		if err := opts.Metrics.InstrumentDB(db); err != nil {
			utils.ErrorLogger.Printf("Database metrics disabled: %v", err)
		}
	}

	if cfg.RateLimit.Enabled() {
		opts.RateLimiter = middlewares.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.SetupRouter(db, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.InfoLogger.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	utils.InfoLogger.Println("Server exited")
}
