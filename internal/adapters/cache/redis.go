// Package cache provides the Redis implementation of the cache port.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/internal/config"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

// Log and error messages.
const (
	errCtxConnectRedis = "failed to connect to redis"
	errCtxGetValue     = "failed to get value from cache"
	errCtxSetValue     = "failed to set value in cache"

	logRedisConnected = "connected to redis"
	logRedisClosed    = "redis connection closed"
)

// Redis implements the cache port on top of a Redis client.
type Redis struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(ctx context.Context, cfg *config.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddress(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxConnectRedis, err)
	}

	logger.Log(ctx).Info(ctx, logRedisConnected, zap.String("addr", cfg.GetAddress()))

	return &Redis{
		client:     client,
		defaultTTL: cfg.DefaultTTL,
	}, nil
}

// NewRedisWithClient wraps an existing client. Used in tests.
func NewRedisWithClient(client *redis.Client, defaultTTL time.Duration) *Redis {
	return &Redis{
		client:     client,
		defaultTTL: defaultTTL,
	}
}

// Get returns the cached value for key, or an empty string on a miss.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", errCtxGetValue, err)
	}

	return value, nil
}

// Set stores value under key. A zero ttl falls back to the default TTL.
func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.defaultTTL
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", errCtxSetValue, err)
	}

	return nil
}

// Close closes the underlying Redis client.
func (r *Redis) Close() error {
	err := r.client.Close()
	if err == nil {
		logger.Log(context.Background()).Info(context.Background(), logRedisClosed)
	}
	return err
}
