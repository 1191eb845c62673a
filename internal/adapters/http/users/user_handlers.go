// Package users contains the HTTP handlers for registration, login and
// account removal.
package users

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
	LogHandlerRegister   = "user handler: register"
	LogHandlerLogin      = "user handler: login"
	LogHandlerDeleteUser = "user handler: delete user"

	ErrorInvalidRequest = "invalid request"

	msgUserDeleted = "user deleted successfully"
)

// Handler contains the HTTP handlers for user operations.
type Handler struct {
	authUseCase api.AuthUseCase
	userUseCase api.UserUseCase
}

// NewHandler creates a new user handler.
func NewHandler(authUseCase api.AuthUseCase, userUseCase api.UserUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
	}
}

// Register handles new account creation.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, ErrorInvalidRequest)
	}

	user, token, err := h.authUseCase.Register(requestCtx, api.RegisterInput{
		Name:       req.Name,
		Gender:     req.Gender,
		NationalID: req.NationalID,
		Address:    req.Address,
		Email:      req.Email,
		Password:   req.Password,
		Birthdate:  req.Birthdate,
	})
	if err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, http.StatusCreated, dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	})
}

// Login handles credential verification and token issuance.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, ErrorInvalidRequest)
	}

	user, token, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, http.StatusOK, dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	})
}

// DeleteUser handles permanent account removal.
func (h *Handler) DeleteUser(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteUser)

	if err := h.userUseCase.Delete(requestCtx, ctx.Params("id")); err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, http.StatusOK, dto.MessageResponse{Message: msgUserDeleted})
}
