package app

import (
	"context"
	"fmt"

	authHTTP "github.com/studybuddy/certtracker/internal/auth/http"
	certHTTP "github.com/studybuddy/certtracker/internal/cert/http"
	"github.com/studybuddy/certtracker/internal/http"
	"github.com/studybuddy/certtracker/internal/metrics"
	userHTTP "github.com/studybuddy/certtracker/internal/user/http"
)

// initHTTPServer assembles the API server: handlers, authorization guards and
// global middleware. The context owns the rate limiter's background sweeper.
func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for http server: %w", err)
	}

	authMetrics, err := c.AuthMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth metrics for http server: %w", err)
	}

	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}

	certUseCase, err := c.CertificationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get certification use case for http server: %w", err)
	}

	userCertUseCase, err := c.UserCertUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user cert use case for http server: %w", err)
	}

	routerConfig := http.RouterConfig{
		UserHandler:          userHTTP.NewUserHandler(userUseCase, logger),
		CertificationHandler: certHTTP.NewCertificationHandler(certUseCase, logger),
		UserCertHandler:      certHTTP.NewUserCertHandler(userCertUseCase, logger),
		HeaderGuard:          authHTTP.AuthorizationGuard(tokenService, authHTTP.TokenSourceHeader, logger, authMetrics),
		BodyGuard:            authHTTP.AuthorizationGuard(tokenService, authHTTP.TokenSourceBody, logger, authMetrics),
		CORS:                 http.CreateCORSMiddleware(c.config.CORSEnabled, c.config.CORSAllowOrigins, logger),
	}

	if c.config.RateLimitEnabled {
		routerConfig.CredentialRateLimit = authHTTP.CredentialRateLimitMiddleware(
			ctx,
			c.config.RateLimitRequestsPerSec,
			c.config.RateLimitBurst,
			logger,
		)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}
	if provider != nil {
		routerConfig.Metrics = metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace)
	}

	return http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger, routerConfig), nil
}
