package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LHProvin/exercita365b/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("development logger with explicit level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("production logger with default level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "chatty")
		require.Error(t, err)
		assert.Nil(t, log)
	})
}

func TestLogFromContext(t *testing.T) {
	t.Run("context logger wins", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), log)
		assert.Same(t, log, logger.Log(ctx))
	})

	t.Run("missing logger falls back without panicking", func(t *testing.T) {
		assert.NotNil(t, logger.Log(context.Background()))
	})

	t.Run("FromContext reports a missing logger", func(t *testing.T) {
		_, err := logger.FromContext(context.Background())
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}

func TestRequestIDContext(t *testing.T) {
	t.Run("provided id preserved", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-123")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-123", id)
	})

	t.Run("empty id generates a fresh one", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("absent id reported", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}
