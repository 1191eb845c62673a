// Package middleware contains the HTTP middleware chain.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// Locals keys shared between middleware and handlers.
const (
	LocalsUserID         = "userID"
	localsRequestContext = "requestContext"
)

// RequestContext returns the request-scoped context enriched by the logger
// middleware, falling back to the raw request context.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(localsRequestContext).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}

// UserID returns the verified caller identity set by the auth middleware.
func UserID(ctx fiber.Ctx) (string, bool) {
	userID, ok := ctx.Locals(LocalsUserID).(string)
	return userID, ok && userID != ""
}
