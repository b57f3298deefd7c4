package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authService "github.com/studybuddy/certtracker/internal/auth/service"
	"github.com/studybuddy/certtracker/internal/metrics"
)

const testSecret = "test-signing-key"

// setupGuardRouter builds a router with one protected echo endpoint that
// reports the bound identity and the body it can still read.
func setupGuardRouter(t *testing.T, source TokenSource) (*gin.Engine, authService.TokenService) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenService, err := authService.NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	router := gin.New()
	guard := AuthorizationGuard(tokenService, source, logger, metrics.NewNoOpAuthMetrics())
	router.POST("/protected", guard, func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}

		var body map[string]any
		_ = c.ShouldBindJSON(&body)

		c.JSON(http.StatusOK, gin.H{
			"user_id":  identity.UserID,
			"username": identity.Username,
			"body":     body,
		})
	})

	return router, tokenService
}

func doRequest(router *gin.Engine, header string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/protected", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthorizationGuard_HeaderSource(t *testing.T) {
	router, tokenService := setupGuardRouter(t, TokenSourceHeader)

	token, err := tokenService.Issue(42, "alice123", nil)
	require.NoError(t, err)

	t.Run("raw token accepted", func(t *testing.T) {
		w := doRequest(router, token, []byte(`{}`))
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(42), response["user_id"])
		assert.Equal(t, "alice123", response["username"])
	})

	t.Run("bearer prefix accepted case-insensitively", func(t *testing.T) {
		for _, prefix := range []string{"Bearer ", "bearer ", "BEARER "} {
			w := doRequest(router, prefix+token, []byte(`{}`))
			assert.Equal(t, http.StatusOK, w.Code, "prefix %q", prefix)
		}
	})

	t.Run("missing header is 400", func(t *testing.T) {
		w := doRequest(router, "", []byte(`{}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed token is 403", func(t *testing.T) {
		w := doRequest(router, "random text", []byte(`{}`))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("token from other secret is 403", func(t *testing.T) {
		other, err := authService.NewTokenService("another-key", time.Hour)
		require.NoError(t, err)
		forged, err := other.Issue(42, "alice123", nil)
		require.NoError(t, err)

		w := doRequest(router, forged, []byte(`{}`))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthorizationGuard_ExpiredToken(t *testing.T) {
	router, _ := setupGuardRouter(t, TokenSourceHeader)

	token := issueExpired(t)

	w := doRequest(router, token, []byte(`{}`))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Token expired", response["message"])
}

func TestAuthorizationGuard_BodySource(t *testing.T) {
	router, tokenService := setupGuardRouter(t, TokenSourceBody)

	token, err := tokenService.Issue(7, "bob", nil)
	require.NoError(t, err)

	t.Run("token in body accepted and body restored", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{"token": token, "status": "active"})
		require.NoError(t, err)

		w := doRequest(router, "", body)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(7), response["user_id"])

		// The guard must leave the body readable for the handler.
		boundBody, ok := response["body"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "active", boundBody["status"])
	})

	t.Run("missing token field is 400", func(t *testing.T) {
		w := doRequest(router, "", []byte(`{"status":"active"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Missing JWT token", response["message"])
	})

	t.Run("header is ignored for body-source routes", func(t *testing.T) {
		w := doRequest(router, token, []byte(`{}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid body token is 403", func(t *testing.T) {
		w := doRequest(router, "", []byte(`{"token":"garbage"}`))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// issueExpired signs a token with the guard's secret whose exp already passed.
func issueExpired(t *testing.T) string {
	t.Helper()

	past, err := authService.NewTokenService(testSecret, time.Millisecond)
	require.NoError(t, err)

	token, err := past.Issue(42, "alice123", nil)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	return token
}
