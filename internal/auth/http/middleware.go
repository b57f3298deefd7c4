package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/studybuddy/certtracker/internal/auth/domain"
	authService "github.com/studybuddy/certtracker/internal/auth/service"
	"github.com/studybuddy/certtracker/internal/httputil"
	"github.com/studybuddy/certtracker/internal/metrics"
)

// TokenSource selects where the guard looks for the bearer token. Each
// protected route fixes exactly one source as part of its external contract.
type TokenSource int

const (
	// TokenSourceHeader reads the token from the Authorization header.
	// A "Bearer " prefix is accepted case-insensitively but not required.
	TokenSourceHeader TokenSource = iota

	// TokenSourceBody reads the token from the "token" field of the JSON body.
	// The body is restored so downstream handlers can bind it again.
	TokenSourceBody
)

// AuthorizationGuard authenticates a request before any handler work happens.
//
// The guard:
//  1. Locates the token at the route's configured source
//  2. Fails fast with 400 when no token is present (the validator never runs)
//  3. Delegates to the TokenService, propagating its classification
//     (expired -> 401, invalid -> 403)
//  4. On success, binds the resulting identity into the request context for
//     the remainder of the operation
//
// The guard runs to completion before the handler executes, so no database
// work can happen on an unauthenticated request.
func AuthorizationGuard(
	tokenService authService.TokenService,
	source TokenSource,
	logger *slog.Logger,
	authMetrics metrics.AuthMetrics,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c, source)
		if err != nil {
			authMetrics.RecordTokenValidation(c.Request.Context(), "missing")
			logger.Debug("authorization failed: no token presented",
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		identity, err := tokenService.Validate(token)
		if err != nil {
			authMetrics.RecordTokenValidation(c.Request.Context(), validationOutcome(err))
			logger.Debug("authorization failed",
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		authMetrics.RecordTokenValidation(c.Request.Context(), "accepted")

		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authorization successful",
			slog.Int64("user_id", identity.UserID),
			slog.String("username", identity.Username))

		c.Next()
	}
}

// validationOutcome maps a token validation error to a metric label.
func validationOutcome(err error) string {
	if errors.Is(err, authDomain.ErrTokenExpired) {
		return "expired"
	}
	return "invalid"
}

// extractToken locates the bearer token at the configured source.
// Returns domain.ErrTokenMissing when nothing is present.
func extractToken(c *gin.Context, source TokenSource) (string, error) {
	switch source {
	case TokenSourceBody:
		return tokenFromBody(c)
	default:
		return tokenFromHeader(c)
	}
}

// tokenFromHeader reads the Authorization header. Header name matching is
// case-insensitive per net/http; an optional "Bearer " prefix is stripped.
func tokenFromHeader(c *gin.Context) (string, error) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return "", authDomain.ErrTokenMissing
	}

	const bearerPrefix = "bearer "
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		header = strings.TrimSpace(header[len(bearerPrefix):])
	}
	if header == "" {
		return "", authDomain.ErrTokenMissing
	}

	return header, nil
}

// tokenFromBody reads the "token" field of the JSON body, then restores the
// body so the handler can bind the remaining fields.
func tokenFromBody(c *gin.Context) (string, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", authDomain.ErrTokenMissing
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	var envelope struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Token == "" {
		return "", authDomain.ErrTokenMissing
	}

	return envelope.Token, nil
}
