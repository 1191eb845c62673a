// Package services defines domain-level types and errors for authentication
// and geocoding.
package services

import (
	"errors"
	"time"
)

// Authentication domain errors.
var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrUserAlreadyExists     = errors.New("user with this national id or email already exists")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication token")
)

// Token errors.
var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token has expired")
	ErrGeneratingToken = errors.New("failed to generate token")
)

// Password errors.
var (
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrInvalidPassword = errors.New("invalid password")
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// TokenConfig holds the token service settings.
type TokenConfig struct {
	SecretKey      []byte
	AccessTokenTTL time.Duration
}

// TokenClaims is the identity payload carried by a signed token. A zero
// ExpiresAt means the token never expires on its own.
type TokenClaims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
