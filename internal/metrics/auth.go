package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AuthMetrics records authentication and authorization events.
type AuthMetrics interface {
	// RecordCredentialAttempt records a register or login attempt.
	// Operation is "register" or "login"; outcome is "success", "rejected"
	// or "error".
	RecordCredentialAttempt(ctx context.Context, operation, outcome string)

	// RecordTokenValidation records an authorization guard decision.
	// Outcome is "accepted", "missing", "expired" or "invalid".
	RecordTokenValidation(ctx context.Context, outcome string)
}

type authMetrics struct {
	credentialCounter metric.Int64Counter
	tokenCounter      metric.Int64Counter
}

// NewAuthMetrics creates an AuthMetrics implementation on the given meter provider.
func NewAuthMetrics(meterProvider metric.MeterProvider, namespace string) (AuthMetrics, error) {
	meter := meterProvider.Meter(namespace)

	credentialCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_credential_attempts_total", namespace),
		metric.WithDescription("Total number of register and login attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential counter: %w", err)
	}

	tokenCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_token_validations_total", namespace),
		metric.WithDescription("Total number of authorization guard decisions"),
		metric.WithUnit("{validation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}

	return &authMetrics{
		credentialCounter: credentialCounter,
		tokenCounter:      tokenCounter,
	}, nil
}

func (a *authMetrics) RecordCredentialAttempt(ctx context.Context, operation, outcome string) {
	a.credentialCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("outcome", outcome),
		),
	)
}

func (a *authMetrics) RecordTokenValidation(ctx context.Context, outcome string) {
	a.tokenCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("outcome", outcome),
		),
	)
}

// NoOpAuthMetrics is used when metrics are disabled.
type NoOpAuthMetrics struct{}

// NewNoOpAuthMetrics creates a no-op AuthMetrics implementation.
func NewNoOpAuthMetrics() AuthMetrics {
	return &NoOpAuthMetrics{}
}

// RecordCredentialAttempt does nothing when metrics are disabled.
func (n *NoOpAuthMetrics) RecordCredentialAttempt(ctx context.Context, operation, outcome string) {
}

// RecordTokenValidation does nothing when metrics are disabled.
func (n *NoOpAuthMetrics) RecordTokenValidation(ctx context.Context, outcome string) {
}
