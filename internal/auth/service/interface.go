// Package service implements the authentication primitives: password hashing
// and token issuance/validation.
package service

import (
	"github.com/studybuddy/certtracker/internal/auth/domain"
)

// PasswordHasher transforms plaintext passwords into storable digests and
// verifies candidates against stored digests. Implementations are pure and
// safe for concurrent use.
type PasswordHasher interface {
	// Hash transforms a plaintext password into a digest safe to store as text.
	Hash(plaintext string) (string, error)
	// Verify reports whether the plaintext matches the stored digest.
	Verify(plaintext, digest string) bool
}

// TokenService issues and validates signed, time-bounded tokens.
// Issuance is stateless: nothing is persisted, and a structurally valid,
// unexpired token is always accepted until it expires naturally.
type TokenService interface {
	// Issue builds a signed token for the given subject. extraClaims is an
	// open extension point merged into the payload; claim names colliding with
	// the reserved set (sub, username, iat, exp) are rejected.
	Issue(userID int64, username string, extraClaims map[string]any) (string, error)
	// Validate verifies signature and expiry and extracts the subject identity.
	// Failures are classified: domain.ErrTokenExpired for a valid signature past
	// its exp, domain.ErrTokenInvalid for everything else.
	Validate(token string) (*domain.Identity, error)
}
