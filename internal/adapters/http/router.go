// Package http wires the HTTP routes to their handlers.
package http

import (
	"github.com/gofiber/fiber/v3"

	"github.com/LHProvin/exercita365b/internal/adapters/http/locations"
	"github.com/LHProvin/exercita365b/internal/adapters/http/middleware"
	"github.com/LHProvin/exercita365b/internal/adapters/http/users"
	"github.com/LHProvin/exercita365b/internal/ports/api"
	ports "github.com/LHProvin/exercita365b/internal/ports/services"
)

// SetupRouter registers all routes and the shared middleware chain.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	userUseCase api.UserUseCase,
	locationUseCase api.LocationUseCase,
	tokens ports.TokenService,
) {
	userHandler := users.NewHandler(authUseCase, userUseCase)
	locationHandler := locations.NewHandler(locationUseCase)

	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", func(ctx fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	// Public routes.
	app.Post("/usuario", userHandler.Register)
	app.Post("/login", userHandler.Login)

	// Protected routes.
	authGate := middleware.NewAuthMiddleware(tokens)

	app.Delete("/usuario/:id", userHandler.DeleteUser, authGate)

	localRoutes := app.Group("/local")
	localRoutes.Use(authGate)
	localRoutes.Post("/", locationHandler.Create)
	localRoutes.Get("/", locationHandler.List)
	localRoutes.Get("/:id", locationHandler.Get)
	localRoutes.Put("/:id", locationHandler.Update)
	localRoutes.Delete("/:id", locationHandler.Delete)
	localRoutes.Get("/:id/maps", locationHandler.MapLink)

	// Fallback for unknown routes.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
