package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	ports "github.com/LHProvin/exercita365b/internal/ports/services"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

// Log and error messages.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

const bearerPrefix = "Bearer "

// NewAuthMiddleware creates the middleware that verifies the bearer token
// and exposes the caller identity to downstream handlers.
func NewAuthMiddleware(tokens ports.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return sendUnauthorized(ctx, ErrorNoAuthHeader)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return sendUnauthorized(ctx, ErrorInvalidTokenFormat)
		}

		userID, err := tokens.Verify(requestCtx, strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return sendUnauthorized(ctx, ErrorInvalidToken)
		}

		ctx.Locals(LocalsUserID, userID)

		return ctx.Next()
	}
}

func sendUnauthorized(ctx fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	})
}
