package domain

import (
	"time"

	apperrors "github.com/studybuddy/certtracker/internal/errors"
)

// UserCert is a certification tracked by a specific account. Every read and
// write of a UserCert is scoped to its owner; rows belonging to other accounts
// behave as if they do not exist.
type UserCert struct {
	ID               int64
	UserID           int64
	CertificationID  int64
	Status           string
	EarnedOn         *time.Time
	ExpiresOn        *time.Time
	CEHoursRequired  *int
	CEHoursCompleted *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UserCertDetail is a tracked certification joined with its catalog entry,
// as returned by list operations.
type UserCertDetail struct {
	UserCert
	CertName string
	Provider string
}

// UserCertUpdate carries the fields of a partial tracked-certification update.
// Nil pointers mean "leave unchanged".
type UserCertUpdate struct {
	Status           *string
	EarnedOn         *time.Time
	ExpiresOn        *time.Time
	CEHoursRequired  *int
	CEHoursCompleted *int
}

// IsEmpty reports whether the update carries no fields.
func (u UserCertUpdate) IsEmpty() bool {
	return u.Status == nil &&
		u.EarnedOn == nil &&
		u.ExpiresOn == nil &&
		u.CEHoursRequired == nil &&
		u.CEHoursCompleted == nil
}

var (
	// ErrUserCertNotFound covers both a missing row and a row owned by another
	// account. The two cases are deliberately indistinguishable to the caller.
	ErrUserCertNotFound = apperrors.NewClassified(apperrors.ErrNotFound, "Record not found or not owned by user")

	// ErrNoRecordsToDelete indicates a delete matched no owned rows.
	ErrNoRecordsToDelete = apperrors.NewClassified(apperrors.ErrNotFound, "No records found to delete")
)
