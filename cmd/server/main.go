// Package main implements the API server entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/internal/adapters/cache"
	"github.com/LHProvin/exercita365b/internal/adapters/geocoding"
	httpadapter "github.com/LHProvin/exercita365b/internal/adapters/http"
	pgadapter "github.com/LHProvin/exercita365b/internal/adapters/postgres"
	"github.com/LHProvin/exercita365b/internal/adapters/services"
	"github.com/LHProvin/exercita365b/internal/app"
	"github.com/LHProvin/exercita365b/internal/config"
	"github.com/LHProvin/exercita365b/pkg/db/postgres"
	"github.com/LHProvin/exercita365b/pkg/logger"
	"github.com/LHProvin/exercita365b/pkg/shutdown"
)

// Environment variables read before the configuration is loaded.
const (
	EnvLoggerMode  = "EXERCITA_LOGGER_MODE"
	EnvLoggerLevel = "EXERCITA_LOGGER_LEVEL"
)

// Error messages.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrRunMigrations        = "failed to run database migrations"
	ErrInitCache            = "failed to initialize cache"
	ErrStartHTTP            = "failed to start HTTP server"
)

// Ignored logger sync errors.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Service messages.
const (
	LogServiceStarted      = "exercise locations service started"
	LogServiceShutdownDone = "exercise locations service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing cache connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitGeocoder        = "initializing geocoder"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

const migrationsSource = "file://migrations"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)

		database, err := postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), migrationsSource); err != nil {
			log.Error(ctx, ErrRunMigrations, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		redisCache, err := cache.NewRedis(ctx, &cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrInitCache, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := pgadapter.NewRepositoryFactory(database.Pool())
		userRepo := repoFactory.UserRepository()
		locationRepo := repoFactory.LocationRepository()

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(
			cfg.JWT.SecretKey,
			cfg.JWT.GetAccessTokenTTL(),
			cfg.JWT.BCryptCost,
		)
		passwordService := serviceFactory.PasswordService()
		tokenService := serviceFactory.TokenService()

		log.Info(ctx, LogInitGeocoder)
		geocoder := geocoding.NewCached(
			geocoding.NewNominatim(&cfg.Geocoding),
			redisCache,
			cfg.Geocoding.CacheTTL,
		)

		log.Info(ctx, LogInitUseCases)
		authUseCase := app.NewAuthUseCase(userRepo, passwordService, tokenService, cfg.JWT.GetAccessTokenTTL())
		userUseCase := app.NewUserUseCase(userRepo, locationRepo)
		locationUseCase := app.NewLocationUseCase(locationRepo, geocoder)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})
		httpadapter.SetupRouter(fiberApp, authUseCase, userUseCase, locationUseCase, tokenService)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Fatal(ctx, ErrStartHTTP, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(hookCtx context.Context) error {
				log.Info(hookCtx, LogStoppingHTTP)
				return fiberApp.ShutdownWithContext(hookCtx)
			},
			func(hookCtx context.Context) error {
				log.Info(hookCtx, LogClosingDB)
				database.Close(hookCtx)
				return nil
			},
			func(hookCtx context.Context) error {
				log.Info(hookCtx, LogClosingCache)
				return redisCache.Close()
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
