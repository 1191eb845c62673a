package services

import (
	"context"
	"time"
)

// Cache defines a string key-value cache with per-entry TTL. Get returns
// an empty string without error on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key, value string, ttl time.Duration) error

	Close() error
}
