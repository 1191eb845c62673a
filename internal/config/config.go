// Package config holds the service configuration.
package config

import (
	"context"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/pkg/logger"
)

// Configuration log and error messages.
const (
	LogLoadingConfig    = "loading service configuration"
	LogConfigLoaded     = "configuration loaded successfully"
	ErrFailedLoadConfig = "failed to load configuration"
)

// Config is the full application configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	JWT       JWTConfig       `yaml:"jwt"`
	Redis     RedisConfig     `yaml:"redis"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	Logging   LoggingConfig   `yaml:"logging"`
	Shutdown  ShutdownConfig  `yaml:"shutdown"`
}

// Load reads the configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogLoadingConfig)

	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_host", cfg.HTTP.Host),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.String("geocoding_base_url", cfg.Geocoding.BaseURL),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return &cfg, nil
}
