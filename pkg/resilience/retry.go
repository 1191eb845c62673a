// Package resilience provides a retry mechanism with exponential backoff
// for outbound calls.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/pkg/logger"
)

// RetryConfig holds the retry mechanism settings.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts, including the first.
	MaxAttempts int
	// InitialBackoff is the delay before the second attempt.
	InitialBackoff time.Duration
	// MaxBackoff caps the delay between attempts.
	MaxBackoff time.Duration
	// BackoffFactor is the exponential backoff multiplier.
	BackoffFactor float64
	// ShouldRetry decides whether a given error is retryable.
	ShouldRetry func(error) bool
}

// DefaultRetryConfig returns the default retry settings.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     1 * time.Second,
		BackoffFactor:  2.0,
		ShouldRetry:    defaultShouldRetry,
	}
}

// ErrContextCanceled is returned when the context is canceled while waiting
// between attempts.
var ErrContextCanceled = errors.New("context was canceled during retry")

func defaultShouldRetry(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

const (
	logRetryOperation   = "retry operation"
	logRetryAttempt     = "retry attempt"
	logRetrySuccess     = "retry succeeded"
	logRetryMaxAttempts = "retry max attempts reached"
)

// Retry executes an operation with automatic retries.
type Retry struct {
	name   string
	config RetryConfig
}

// NewRetry creates a new retry mechanism with the given name.
func NewRetry(name string, config RetryConfig) *Retry {
	return &Retry{
		name:   name,
		config: config,
	}
}

// Execute runs the operation, retrying retryable failures with backoff.
func (r *Retry) Execute(ctx context.Context, operation func() error) error {
	log := logger.Log(ctx).With(zap.String("retry", r.name))
	log.Debug(ctx, logRetryOperation)

	var err error
	backoff := r.config.InitialBackoff
	attempts := 0

	for attempts < r.config.MaxAttempts {
		attempts++

		err = operation()

		if err == nil || !r.config.ShouldRetry(err) {
			if attempts > 1 && err == nil {
				log.Info(ctx, logRetrySuccess, zap.Int("attempts", attempts))
			}
			return err
		}

		if attempts >= r.config.MaxAttempts {
			log.Warn(ctx, logRetryMaxAttempts,
				zap.Int("attempts", attempts),
				zap.Error(err))
			return err
		}

		log.Info(ctx, logRetryAttempt,
			zap.Int("attempt", attempts),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrContextCanceled, ctx.Err())
		}

		backoff = time.Duration(float64(backoff) * r.config.BackoffFactor)
		if backoff > r.config.MaxBackoff {
			backoff = r.config.MaxBackoff
		}
	}

	return err
}
