package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LHProvin/exercita365b/internal/adapters/services"
	domain "github.com/LHProvin/exercita365b/internal/domain/services"
)

const (
	testSecretKey = "test-secret-key"
	testUserID    = "user-id-1"
)

func TestIssueAndVerify(t *testing.T) {
	ctx := context.Background()
	tokenSvc := services.NewJWT(testSecretKey, time.Hour)

	t.Run("round trip returns the bound user id", func(t *testing.T) {
		token, expiresAt, err := tokenSvc.Issue(ctx, testUserID, time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		userID, err := tokenSvc.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, testUserID, userID)
	})

	t.Run("zero ttl issues a token without expiry", func(t *testing.T) {
		token, expiresAt, err := tokenSvc.Issue(ctx, testUserID, 0)
		require.NoError(t, err)
		assert.True(t, expiresAt.IsZero())

		userID, err := tokenSvc.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, testUserID, userID)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token, expiresAt, err := tokenSvc.Issue(ctx, testUserID, -time.Minute)
		require.NoError(t, err)
		assert.True(t, expiresAt.Before(time.Now()))

		_, err = tokenSvc.Verify(ctx, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrExpiredToken)
	})

	t.Run("token signed with a different secret rejected", func(t *testing.T) {
		otherSvc := services.NewJWT("another-secret", time.Hour)
		token, _, err := otherSvc.Issue(ctx, testUserID, time.Hour)
		require.NoError(t, err)

		_, err = tokenSvc.Verify(ctx, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		_, err := tokenSvc.Verify(ctx, "not-a-token")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("empty secret key fails issuance", func(t *testing.T) {
		emptySvc := services.NewJWT("", time.Hour)
		_, _, err := emptySvc.Issue(ctx, testUserID, time.Hour)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrGeneratingToken)
	})

	t.Run("token without user id rejected", func(t *testing.T) {
		token, _, err := tokenSvc.Issue(ctx, "", time.Hour)
		require.NoError(t, err)

		_, err = tokenSvc.Verify(ctx, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}
