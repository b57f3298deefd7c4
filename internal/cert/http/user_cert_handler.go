package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/studybuddy/certtracker/internal/auth/http"
	"github.com/studybuddy/certtracker/internal/cert/http/dto"
	"github.com/studybuddy/certtracker/internal/cert/usecase"
	apperrors "github.com/studybuddy/certtracker/internal/errors"
	"github.com/studybuddy/certtracker/internal/httputil"
)

// UserCertHandler handles tracked-certification HTTP requests. All routes run
// behind the authorization guard with the token carried in the request body;
// the owner scope always comes from the authenticated identity.
type UserCertHandler struct {
	userCertUseCase usecase.UserCertUseCase
	logger          *slog.Logger
}

// NewUserCertHandler creates a new UserCertHandler
func NewUserCertHandler(userCertUseCase usecase.UserCertUseCase, logger *slog.Logger) *UserCertHandler {
	return &UserCertHandler{
		userCertUseCase: userCertUseCase,
		logger:          logger,
	}
}

// CreateHandler tracks a certification for the authenticated account.
// POST /v1/user-certs - Returns 201 Created.
func (h *UserCertHandler) CreateHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, "missing identity"), h.logger)
		return
	}

	var req dto.CreateUserCertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	userCert, err := h.userCertUseCase.Create(c.Request.Context(), identity.UserID, dto.ToCreateUserCertInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserCertResponse(userCert))
}

// ListHandler returns the authenticated account's tracked certifications
// joined with their catalog entries.
// POST /v1/user-certs/list
func (h *UserCertHandler) ListHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, "missing identity"), h.logger)
		return
	}

	var req dto.ListUserCertsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	details, err := h.userCertUseCase.List(c.Request.Context(), identity.UserID, req.UserCertID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserCertsResponse(details))
}

// UpdateHandler applies a partial update to one of the authenticated
// account's tracked certifications. A row owned by another account reads as
// not found.
// PUT /v1/user-certs
func (h *UserCertHandler) UpdateHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, "missing identity"), h.logger)
		return
	}

	var req dto.UpdateUserCertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	err := h.userCertUseCase.Update(c.Request.Context(), identity.UserID, req.UserCertID, dto.ToUserCertUpdate(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateUserCertResponse{Message: "Record updated successfully"})
}

// DeleteHandler removes one tracked certification, or all of them when the
// body carries no user_cert_id.
// DELETE /v1/user-certs
func (h *UserCertHandler) DeleteHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, "missing identity"), h.logger)
		return
	}

	var req dto.DeleteUserCertsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	output, err := h.userCertUseCase.Delete(c.Request.Context(), identity.UserID, req.UserCertID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteUserCertsResponse{
		Message:     "Records deleted successfully",
		RowsDeleted: output.RowsDeleted,
	})
}
