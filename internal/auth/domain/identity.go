// Package domain defines the authentication domain model and its classified errors.
//
// Authentication is token based: a signed, time-bounded token carries the user's
// numeric identity and username. Validation is a pure local check against the
// server secret; there is no server-side session or revocation state.
package domain

// Identity is the result of successful token validation, scoped to a single
// request. UserID is the token subject; every ownership check compares against it.
type Identity struct {
	UserID   int64
	Username string
}

// Claim names the token service reserves for itself. Extra claims supplied at
// issuance must not collide with these.
const (
	ClaimSubject  = "sub"
	ClaimUsername = "username"
	ClaimIssuedAt = "iat"
	ClaimExpires  = "exp"
)

// ReservedClaims lists the claim names managed by the token service.
var ReservedClaims = []string{ClaimSubject, ClaimUsername, ClaimIssuedAt, ClaimExpires}
