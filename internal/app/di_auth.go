package app

import (
	"fmt"
	"sync"

	authService "github.com/studybuddy/certtracker/internal/auth/service"
	"github.com/studybuddy/certtracker/internal/metrics"
)

// authComponents groups the authentication dependencies inside the container.
type authComponents struct {
	tokenService   authService.TokenService
	passwordHasher authService.PasswordHasher
	metrics        metrics.AuthMetrics

	tokenServiceInit   sync.Once
	passwordHasherInit sync.Once
	metricsInit        sync.Once
}

// TokenService returns the JWT token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.auth.tokenServiceInit.Do(func() {
		service, err := authService.NewTokenService(c.config.JWTKey, c.config.TokenExpiration)
		if err != nil {
			c.initErrors["tokenService"] = fmt.Errorf("failed to create token service: %w", err)
			return
		}
		c.auth.tokenService = service
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.auth.tokenService, nil
}

// AuthMetrics returns the authentication metrics recorder. When metrics are
// disabled, a no-op recorder is returned so callers never branch on the flag.
func (c *Container) AuthMetrics() (metrics.AuthMetrics, error) {
	c.auth.metricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["authMetrics"] = fmt.Errorf("failed to get metrics provider for auth metrics: %w", err)
			return
		}
		if provider == nil {
			c.auth.metrics = metrics.NewNoOpAuthMetrics()
			return
		}

		authMetrics, err := metrics.NewAuthMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["authMetrics"] = fmt.Errorf("failed to create auth metrics: %w", err)
			return
		}
		c.auth.metrics = authMetrics
	})
	if storedErr, exists := c.initErrors["authMetrics"]; exists {
		return nil, storedErr
	}
	return c.auth.metrics, nil
}

// PasswordHasher returns the configured password hasher.
func (c *Container) PasswordHasher() (authService.PasswordHasher, error) {
	c.auth.passwordHasherInit.Do(func() {
		hasher, err := authService.NewPasswordHasher(c.config.PasswordScheme)
		if err != nil {
			c.initErrors["passwordHasher"] = fmt.Errorf("failed to create password hasher: %w", err)
			return
		}
		c.auth.passwordHasher = hasher
	})
	if storedErr, exists := c.initErrors["passwordHasher"]; exists {
		return nil, storedErr
	}
	return c.auth.passwordHasher, nil
}
