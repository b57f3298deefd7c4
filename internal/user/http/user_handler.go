// Package http provides HTTP handlers for account and profile operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/studybuddy/certtracker/internal/auth/http"
	apperrors "github.com/studybuddy/certtracker/internal/errors"
	"github.com/studybuddy/certtracker/internal/httputil"
	"github.com/studybuddy/certtracker/internal/user/http/dto"
	"github.com/studybuddy/certtracker/internal/user/usecase"
)

// UserHandler handles account registration, login and profile requests
type UserHandler struct {
	userUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUseCase usecase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a new account and issues a token for it.
// POST /v1/register - Returns 201 Created, or 409 Conflict when the username is taken.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	result, err := h.userUseCase.Register(c.Request.Context(), dto.ToRegisterUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse("User registered successfully", result))
}

// LoginHandler verifies credentials and issues a token.
// POST /v1/login - Returns 200 OK, 401 on a wrong password, 404 on an unknown username.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	result, err := h.userUseCase.Login(c.Request.Context(), dto.ToLoginInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse("Login successful", result))
}

// GetInfoHandler returns the account behind the authenticated identity.
// GET /v1/users/me - Requires the authorization guard (header token).
func (h *UserHandler) GetInfoHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, "missing identity"), h.logger)
		return
	}

	user, err := h.userUseCase.GetInfo(c.Request.Context(), identity.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfileHandler applies a partial profile update to the authenticated account.
// PUT /v1/users/me - Requires the authorization guard (body token).
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, "missing identity"), h.logger)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.UpdateProfile(c.Request.Context(), identity.UserID, dto.ToProfileUpdate(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
