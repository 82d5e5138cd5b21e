package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradequotes/internal/adapters/cache"
	"tradequotes/internal/adapters/postgres"
	"tradequotes/internal/api"
	"tradequotes/internal/config"
	"tradequotes/internal/platform/db"
	httpserver "tradequotes/internal/platform/http"
	"tradequotes/internal/position"
	"tradequotes/internal/position/handler"

	"github.com/sirupsen/logrus"
)

const startupTimeout = 10 * time.Second

// Run wires the application components, starts HTTP server and scheduler
func Run(configPath string) error {
	appCfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	trail, err := appCfg.Trailing.Fraction()
	if err != nil {
		logrus.WithError(err).Error("Invalid trailing stop config")
		return err
	}

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if err = db.Migrate(startupCtx, appCfg.DbServer); err != nil {
		logrus.WithError(err).Error("Failed to apply migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Pair factories cache
	pairCache, err := cache.NewPairCache(appCfg.Cache.MaxPairs)
	if err != nil {
		return err
	}
	defer pairCache.Close()

	// Repositories
	positionRepo := postgres.NewPositionRepository(pool)
	markRepo := postgres.NewMarkRepository(pool)

	// Services
	pairs := position.NewPairs(pairCache, appCfg.Precision)
	positionService := position.NewService(positionRepo, markRepo, pairs)
	scheduler := position.NewScheduler(positionRepo, markRepo, pairs, trail, time.Duration(appCfg.Scheduler.JobDurationSec)*time.Second)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	positionHandler := handler.NewPositionHandler(positionService, pairs)
	router := api.NewRouter(positionHandler, appCfg.HTTPServer.CORSAllowedOrigins)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// Migrate applies pending migrations and exits.
func Migrate(configPath string) error {
	appCfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err = db.Migrate(ctx, appCfg.DbServer); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logrus.Info("✅ Migrations applied")
	return nil
}

func loadConfig(path string) (*config.AppConfig, error) {
	appCfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	setupLogger(appCfg.Logging)
	logrus.Info("✅ Config initialization successful")
	return appCfg, nil
}

func setupLogger(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
}
