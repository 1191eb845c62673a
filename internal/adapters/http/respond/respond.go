// Package respond translates application failures into HTTP responses.
package respond

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/internal/adapters/http/middleware"
	"github.com/LHProvin/exercita365b/internal/app"
	"github.com/LHProvin/exercita365b/internal/domain/entities"
	domain "github.com/LHProvin/exercita365b/internal/domain/services"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

// Messages returned to the caller. Internal detail stays in the logs.
const (
	msgValidationFailed = "validation failed"
	msgInternalError    = "internal server error"

	logRequestFailed = "request failed"
)

// statusBySentinel maps domain sentinels to their HTTP status. The body
// carries the sentinel's own message so client-facing text stays stable no
// matter how the error was wrapped on the way up.
var statusBySentinel = []struct {
	err    error
	status int
}{
	{domain.ErrUserAlreadyExists, http.StatusBadRequest},
	{domain.ErrInvalidCredentials, http.StatusBadRequest},
	{entities.ErrUserHasLocations, http.StatusBadRequest},
	{entities.ErrEmptyUserID, http.StatusBadRequest},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrExpiredToken, http.StatusUnauthorized},
	{entities.ErrUserNotFound, http.StatusNotFound},
	{entities.ErrLocationNotFound, http.StatusNotFound},
	{domain.ErrGeocodeNotFound, http.StatusNotFound},
}

// Error maps err to its status code and sends the JSON error body. Internal
// failures are logged with full detail and reported generically.
func Error(ctx fiber.Ctx, err error) error {
	requestCtx := middleware.RequestContext(ctx)

	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		return send(ctx, http.StatusBadRequest, fiber.Map{
			"error":  msgValidationFailed,
			"fields": validationErr.Fields,
		})
	}

	for _, mapping := range statusBySentinel {
		if errors.Is(err, mapping.err) {
			return send(ctx, mapping.status, fiber.Map{"error": mapping.err.Error()})
		}
	}

	logger.Log(requestCtx).Error(requestCtx, logRequestFailed, zap.Error(err))
	return send(ctx, http.StatusInternalServerError, fiber.Map{"error": msgInternalError})
}

// BadRequest sends a 400 with the given message.
func BadRequest(ctx fiber.Ctx, message string) error {
	return send(ctx, http.StatusBadRequest, fiber.Map{"error": message})
}

// Unauthorized sends a 401 with the given message.
func Unauthorized(ctx fiber.Ctx, message string) error {
	return send(ctx, http.StatusUnauthorized, fiber.Map{"error": message})
}

// JSON sends body with the given status code.
func JSON(ctx fiber.Ctx, statusCode int, body any) error {
	return send(ctx, statusCode, body)
}

func send(ctx fiber.Ctx, statusCode int, body any) error {
	if err := ctx.Status(statusCode).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
