// Package http provides HTTP handlers for the certification catalog and
// per-account tracked certifications.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy/certtracker/internal/cert/http/dto"
	"github.com/studybuddy/certtracker/internal/cert/usecase"
	apperrors "github.com/studybuddy/certtracker/internal/errors"
	"github.com/studybuddy/certtracker/internal/httputil"
)

// CertificationHandler handles catalog HTTP requests
type CertificationHandler struct {
	certUseCase usecase.CertificationUseCase
	logger      *slog.Logger
}

// NewCertificationHandler creates a new CertificationHandler
func NewCertificationHandler(certUseCase usecase.CertificationUseCase, logger *slog.Logger) *CertificationHandler {
	return &CertificationHandler{
		certUseCase: certUseCase,
		logger:      logger,
	}
}

// ListHandler returns the whole catalog.
// GET /v1/certifications - No authorization; the catalog is shared.
func (h *CertificationHandler) ListHandler(c *gin.Context) {
	certs, err := h.certUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCertificationListResponse(certs))
}

// GetHandler retrieves a single catalog entry.
// GET /v1/certifications/:id
func (h *CertificationHandler) GetHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	cert, err := h.certUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCertificationResponse(cert))
}

// CreateHandler adds a catalog entry.
// POST /v1/certifications - Requires the authorization guard (header token).
// Returns 201 Created.
func (h *CertificationHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	cert, err := h.certUseCase.Create(c.Request.Context(), dto.ToCreateCertificationInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCertificationResponse(cert))
}

// UpdateHandler applies a partial update to a catalog entry.
// PUT /v1/certifications/:id - Requires the authorization guard (header token).
func (h *CertificationHandler) UpdateHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	cert, err := h.certUseCase.Update(c.Request.Context(), id, dto.ToCertificationUpdate(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCertificationResponse(cert))
}

// DeleteHandler removes a catalog entry.
// DELETE /v1/certifications/:id - Requires the authorization guard (header token).
func (h *CertificationHandler) DeleteHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.certUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Certification deleted"})
}

// parseIDParam parses the :id path parameter as a positive integer.
func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewClassified(apperrors.ErrInvalidInput, "id must be a positive integer")
	}
	return id, nil
}
