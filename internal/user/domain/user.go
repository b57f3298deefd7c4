// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	apperrors "github.com/studybuddy/certtracker/internal/errors"
)

// User represents an application user. HashedPassword holds the one-way
// digest of the password, never the plaintext.
type User struct {
	ID             int64
	FirstName      string
	LastName       string
	Username       string
	HashedPassword string
	Industry       string
	UserRole       string
	Bio            *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProfileUpdate carries the optional profile fields of a partial update.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Industry  *string
	UserRole  *string
	Bio       *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Industry == nil &&
		u.UserRole == nil && u.Bio == nil
}

// Domain-specific errors for user operations. The messages are part of the
// API contract.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = apperrors.NewClassified(apperrors.ErrNotFound, "User not found")

	// ErrUserAlreadyExists indicates a user with the same username already exists.
	ErrUserAlreadyExists = apperrors.NewClassified(apperrors.ErrConflict, "Username already exists")

	// ErrNoFieldsToUpdate indicates a profile update carried no fields.
	ErrNoFieldsToUpdate = apperrors.NewClassified(apperrors.ErrInvalidInput, "No fields provided to update")
)
