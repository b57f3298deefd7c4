// Package dto provides data transfer objects for the certification HTTP layer.
package dto

import "time"

// CertificationResponse represents the API response for a catalog entry
type CertificationResponse struct {
	CertificationID     int64     `json:"certification_id"`
	DomainID            int64     `json:"domain_id"`
	CertName            string    `json:"cert_name"`
	Provider            string    `json:"provider"`
	CertDescription     *string   `json:"cert_description,omitempty"`
	RenewalPeriodMonths *int      `json:"renewal_period_months,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// UserCertResponse represents the API response for a tracked certification.
// Dates are rendered as ISO "YYYY-MM-DD" strings.
type UserCertResponse struct {
	UserCertID       int64  `json:"user_cert_id"`
	CertificationID  int64  `json:"certification_id"`
	Status           string `json:"status"`
	EarnedOn         string `json:"earned_on,omitempty"`
	ExpiresOn        string `json:"expires_on,omitempty"`
	CEHoursRequired  *int   `json:"ce_hours_required,omitempty"`
	CEHoursCompleted *int   `json:"ce_hours_completed,omitempty"`
}

// UserCertDetailResponse is a tracked certification joined with its catalog entry
type UserCertDetailResponse struct {
	UserCertResponse
	CertName string `json:"cert_name"`
	Provider string `json:"provider"`
}

// ListUserCertsResponse wraps the list payload
type ListUserCertsResponse struct {
	UserCerts []UserCertDetailResponse `json:"user_certs"`
}

// UpdateUserCertResponse acknowledges a tracked-certification update
type UpdateUserCertResponse struct {
	Message string `json:"message"`
}

// DeleteUserCertsResponse reports how many rows a delete removed
type DeleteUserCertsResponse struct {
	Message     string `json:"message"`
	RowsDeleted int64  `json:"rows_deleted"`
}
