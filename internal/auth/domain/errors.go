package domain

import (
	apperrors "github.com/studybuddy/certtracker/internal/errors"
)

// Classified authentication errors. The messages are part of the API contract
// and map to fixed status codes: missing token 400, expired token 401,
// invalid token 403, bad login credentials 401.
var (
	// ErrTokenMissing indicates no token was present where one is required.
	// The validator is never invoked in this case.
	ErrTokenMissing = apperrors.NewClassified(apperrors.ErrInvalidInput, "Missing JWT token")

	// ErrTokenExpired indicates the signature checked out but the token is past exp.
	ErrTokenExpired = apperrors.NewClassified(apperrors.ErrUnauthorized, "Token expired")

	// ErrTokenInvalid indicates a bad signature, malformed structure, or an
	// unparseable subject claim.
	ErrTokenInvalid = apperrors.NewClassified(apperrors.ErrForbidden, "Invalid token")

	// ErrInvalidCredentials indicates a failed password check at login.
	ErrInvalidCredentials = apperrors.NewClassified(apperrors.ErrUnauthorized, "Invalid credentials")

	// ErrReservedClaim indicates an extra claim collided with a reserved claim name.
	ErrReservedClaim = apperrors.NewClassified(apperrors.ErrInvalidInput, "extra claim collides with a reserved claim name")
)
