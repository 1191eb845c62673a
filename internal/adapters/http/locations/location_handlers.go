// Package locations contains the HTTP handlers for the exercise location
// lifecycle. Every route requires a verified caller.
package locations

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/internal/adapters/http/dto"
	"github.com/LHProvin/exercita365b/internal/adapters/http/middleware"
	"github.com/LHProvin/exercita365b/internal/adapters/http/respond"
	"github.com/LHProvin/exercita365b/internal/ports/api"
	"github.com/LHProvin/exercita365b/pkg/logger"
)

// Log and error messages.
const (
	LogHandlerCreate  = "location handler: create"
	LogHandlerList    = "location handler: list"
	LogHandlerGet     = "location handler: get"
	LogHandlerUpdate  = "location handler: update"
	LogHandlerDelete  = "location handler: delete"
	LogHandlerMapLink = "location handler: map link"

	ErrorInvalidRequest = "invalid request"
	ErrorUnauthorized   = "unauthorized"

	msgLocationDeleted = "location deleted successfully"
)

// Handler contains the HTTP handlers for location operations.
type Handler struct {
	locationUseCase api.LocationUseCase
}

// NewHandler creates a new location handler.
func NewHandler(locationUseCase api.LocationUseCase) *Handler {
	return &Handler{
		locationUseCase: locationUseCase,
	}
}

// Create handles location creation for the caller.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	ownerID, ok := middleware.UserID(ctx)
	if !ok {
		return respond.Unauthorized(ctx, ErrorUnauthorized)
	}

	var req dto.CreateLocationRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, ErrorInvalidRequest)
	}

	location, err := h.locationUseCase.Create(requestCtx, ownerID, req.Name, req.Description, req.Address)
	if err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, http.StatusCreated, dto.NewLocationResponse(location))
}

// List handles listing the caller's locations.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	ownerID, ok := middleware.UserID(ctx)
	if !ok {
		return respond.Unauthorized(ctx, ErrorUnauthorized)
	}

	locations, err := h.locationUseCase.List(requestCtx, ownerID)
	if err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, http.StatusOK, dto.NewLocationListResponse(locations))
}

// Get handles fetching a single owned location.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	ownerID, ok := middleware.UserID(ctx)
	if !ok {
		return respond.Unauthorized(ctx, ErrorUnauthorized)
	}

	location, err := h.locationUseCase.Get(requestCtx, ownerID, ctx.Params("id"))
	if err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, http.StatusOK, dto.NewLocationResponse(location))
}

// Update handles partial modification of an owned location.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	ownerID, ok := middleware.UserID(ctx)
	if !ok {
		return respond.Unauthorized(ctx, ErrorUnauthorized)
	}

	var req dto.UpdateLocationRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, ErrorInvalidRequest)
	}

	location, err := h.locationUseCase.Update(requestCtx, ownerID, ctx.Params("id"), api.UpdateLocationInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	})
	if err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, http.StatusOK, dto.NewLocationResponse(location))
}

// Delete handles removal of an owned location.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	ownerID, ok := middleware.UserID(ctx)
	if !ok {
		return respond.Unauthorized(ctx, ErrorUnauthorized)
	}

	if err := h.locationUseCase.Delete(requestCtx, ownerID, ctx.Params("id")); err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, http.StatusOK, dto.MessageResponse{Message: msgLocationDeleted})
}

// MapLink handles composing a map-service URL for an owned location.
func (h *Handler) MapLink(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerMapLink)

	ownerID, ok := middleware.UserID(ctx)
	if !ok {
		return respond.Unauthorized(ctx, ErrorUnauthorized)
	}

	mapLink, err := h.locationUseCase.MapLink(requestCtx, ownerID, ctx.Params("id"))
	if err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, http.StatusOK, dto.MapLinkResponse{MapLink: mapLink})
}
