// Package domain defines the certification catalog and tracked certification entities.
package domain

import (
	"time"

	apperrors "github.com/studybuddy/certtracker/internal/errors"
)

// Certification is a catalog entry describing an industry certification.
// Catalog rows are shared across all accounts and carry no owner.
type Certification struct {
	ID                  int64
	DomainID            int64
	CertName            string
	Provider            string
	CertDescription     *string
	RenewalPeriodMonths *int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CertificationUpdate carries the fields of a partial catalog update.
// Nil pointers mean "leave unchanged".
type CertificationUpdate struct {
	DomainID            *int64
	CertName            *string
	Provider            *string
	CertDescription     *string
	RenewalPeriodMonths *int
}

// IsEmpty reports whether the update carries no fields.
func (u CertificationUpdate) IsEmpty() bool {
	return u.DomainID == nil &&
		u.CertName == nil &&
		u.Provider == nil &&
		u.CertDescription == nil &&
		u.RenewalPeriodMonths == nil
}

var (
	// ErrCertificationNotFound indicates the catalog entry does not exist.
	ErrCertificationNotFound = apperrors.NewClassified(apperrors.ErrNotFound, "Certification not found")
)
