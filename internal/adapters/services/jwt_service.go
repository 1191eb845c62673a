package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	domain "github.com/LHProvin/exercita365b/internal/domain/services"
	svc "github.com/LHProvin/exercita365b/internal/ports/services"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

const (
	methodIssue  = "Issue"
	methodVerify = "Verify"

	msgIssuingToken   = "issuing token"
	msgVerifyingToken = "verifying token"
	msgTokenIssued    = "token issued successfully"
	msgTokenVerified  = "token verified successfully"
	msgInvalidToken   = "invalid token format"
	msgTokenExpired   = "token has expired"

	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken    = "error parsing token"
	errCtxIssuingToken = "issuing token"
	errCtxParsingToken = "parsing token"
	errCtxVerifying    = "verifying token"
)

// ErrInvalidAlgorithm is returned for tokens signed with an unexpected
// algorithm.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims adapts the domain token payload to the JWT library.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// ServiceJWT implements the TokenService interface with HS256 signatures.
type ServiceJWT struct {
	config domain.TokenConfig
}

// NewJWT creates a new JWT token service.
func NewJWT(secretKey string, accessTokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: domain.TokenConfig{
			SecretKey:      []byte(secretKey),
			AccessTokenTTL: accessTokenTTL,
		},
	}
}

func domainToJWTClaims(claims domain.TokenClaims) Claims {
	registered := jwt.RegisteredClaims{
		IssuedAt: jwt.NewNumericDate(claims.IssuedAt),
		Subject:  claims.UserID,
	}
	if !claims.ExpiresAt.IsZero() {
		registered.ExpiresAt = jwt.NewNumericDate(claims.ExpiresAt)
	}
	return Claims{
		UserID:           claims.UserID,
		RegisteredClaims: registered,
	}
}

// Issue produces a signed token bound to userID. A zero ttl omits the exp
// claim entirely, so the token never expires on its own.
func (s *ServiceJWT) Issue(ctx context.Context, userID string, ttl time.Duration) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgIssuingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", time.Time{}, fmt.Errorf("%s: %w: empty secret key", errCtxIssuingToken, domain.ErrGeneratingToken)
	}

	now := time.Now()
	var expiresAt time.Time
	if ttl != 0 {
		// A negative ttl yields an already-expired token rather than an
		// immortal one.
		expiresAt = now.Add(ttl)
	}

	jwtClaims := domainToJWTClaims(domain.TokenClaims{
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxIssuingToken, domain.ErrGeneratingToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// Verify checks a token's signature and expiry and returns the bound user id.
func (s *ServiceJWT) Verify(ctx context.Context, tokenString string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgVerifyingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return "", fmt.Errorf("%s: %w", errCtxVerifying, domain.ErrExpiredToken)
		}
		log.Debug(ctx, errParsingToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxParsingToken, domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return "", fmt.Errorf("%s: %w", errCtxVerifying, domain.ErrInvalidToken)
	}

	if claims.UserID == "" {
		log.Debug(ctx, "user_id claim is empty")
		return "", fmt.Errorf("%s: %w: empty user_id", errCtxVerifying, domain.ErrInvalidToken)
	}

	log.Debug(ctx, msgTokenVerified, zap.String("userID", claims.UserID))
	return claims.UserID, nil
}
