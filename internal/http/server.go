// Package http provides the API server, route registration and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	certHTTP "github.com/studybuddy/certtracker/internal/cert/http"
	userHTTP "github.com/studybuddy/certtracker/internal/user/http"
)

// RouterConfig carries the handlers and per-route middleware the server mounts.
// Nil middleware entries are skipped.
type RouterConfig struct {
	UserHandler          *userHTTP.UserHandler
	CertificationHandler *certHTTP.CertificationHandler
	UserCertHandler      *certHTTP.UserCertHandler

	// HeaderGuard authorizes requests carrying the token in the
	// Authorization header; BodyGuard reads it from the JSON body.
	HeaderGuard gin.HandlerFunc
	BodyGuard   gin.HandlerFunc

	// CredentialRateLimit protects /v1/register and /v1/login.
	CredentialRateLimit gin.HandlerFunc

	CORS    gin.HandlerFunc
	Metrics gin.HandlerFunc
}

// Server represents the API HTTP server
type Server struct {
	server *http.Server
	db     *sql.DB
	logger *slog.Logger
	config RouterConfig
}

// NewServer creates a new API server. The db handle is only used by the
// readiness probe.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger, config ...RouterConfig) *Server {
	var rc RouterConfig
	if len(config) > 0 {
		rc = config[0]
	}

	return &Server{
		db:     db,
		logger: logger,
		config: rc,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// buildRouter assembles the gin engine with global middleware and all routes.
func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if s.config.CORS != nil {
		router.Use(s.config.CORS)
	}
	if s.config.Metrics != nil {
		router.Use(s.config.Metrics)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	if h := s.config.UserHandler; h != nil {
		credentials := v1.Group("")
		if s.config.CredentialRateLimit != nil {
			credentials.Use(s.config.CredentialRateLimit)
		}
		credentials.POST("/register", h.RegisterHandler)
		credentials.POST("/login", h.LoginHandler)

		v1.GET("/users/me", s.config.HeaderGuard, h.GetInfoHandler)
		v1.PUT("/users/me", s.config.BodyGuard, h.UpdateProfileHandler)
	}

	if h := s.config.CertificationHandler; h != nil {
		// The catalog is readable without a token; mutations require one.
		v1.GET("/certifications", h.ListHandler)
		v1.GET("/certifications/:id", h.GetHandler)
		v1.POST("/certifications", s.config.HeaderGuard, h.CreateHandler)
		v1.PUT("/certifications/:id", s.config.HeaderGuard, h.UpdateHandler)
		v1.DELETE("/certifications/:id", s.config.HeaderGuard, h.DeleteHandler)
	}

	if h := s.config.UserCertHandler; h != nil {
		// Tracked certifications carry the token in the request body.
		v1.POST("/user-certs", s.config.BodyGuard, h.CreateHandler)
		v1.POST("/user-certs/list", s.config.BodyGuard, h.ListHandler)
		v1.PUT("/user-certs", s.config.BodyGuard, h.UpdateHandler)
		v1.DELETE("/user-certs", s.config.BodyGuard, h.DeleteHandler)
	}

	return router
}

// GetHandler returns the assembled http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.buildRouter()
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.buildRouter()

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can reach its database.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	status := http.StatusOK
	overall := "ready"

	if s.db == nil {
		components["database"] = "error"
		status = http.StatusServiceUnavailable
		overall = "not_ready"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			status = http.StatusServiceUnavailable
			overall = "not_ready"
		} else {
			components["database"] = "ok"
		}
	}

	c.JSON(status, gin.H{"status": overall, "components": components})
}
