package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/studybuddy/certtracker/internal/errors"
)

// Password hashing schemes.
const (
	SchemeSHA256   = "sha256"
	SchemeArgon2id = "argon2id"
)

// NewPasswordHasher creates a PasswordHasher for the configured scheme.
//
// The sha256 scheme is deterministic (no per-user salt) and matches digests
// written by earlier deployments, so existing credentials keep verifying.
// The argon2id scheme is the recommended hardening for new installs but is
// not interchangeable with already-stored sha256 digests.
//
// An unknown scheme or an unavailable hashing primitive is a configuration
// error: the constructor fails and the process must not start.
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case SchemeSHA256:
		return &sha256Hasher{}, nil
	case SchemeArgon2id:
		hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to create argon2id hasher")
		}
		return &argon2idHasher{hasher: hasher}, nil
	default:
		return nil, fmt.Errorf("unsupported password scheme: %s", scheme)
	}
}

// sha256Hasher stores the SHA-256 digest of the password, base64 encoded.
type sha256Hasher struct{}

// Hash returns the base64-encoded SHA-256 digest of the plaintext.
func (h *sha256Hasher) Hash(plaintext string) (string, error) {
	digest := sha256.Sum256([]byte(plaintext))
	return base64.StdEncoding.EncodeToString(digest[:]), nil
}

// Verify recomputes the digest and compares in constant time.
func (h *sha256Hasher) Verify(plaintext, digest string) bool {
	computed, err := h.Hash(plaintext)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// argon2idHasher delegates to go-pwdhash (salted argon2id).
type argon2idHasher struct {
	hasher *pwdhash.PasswordHasher
}

func (h *argon2idHasher) Hash(plaintext string) (string, error) {
	digest, err := h.hasher.Hash([]byte(plaintext))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return digest, nil
}

func (h *argon2idHasher) Verify(plaintext, digest string) bool {
	ok, err := h.hasher.Verify([]byte(plaintext), digest)
	return err == nil && ok
}
