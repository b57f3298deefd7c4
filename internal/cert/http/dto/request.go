// Package dto provides data transfer objects for the certification HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/studybuddy/certtracker/internal/validation"
)

// CreateCertificationRequest represents the API request for a new catalog entry
type CreateCertificationRequest struct {
	DomainID            int64   `json:"domain_id"`
	CertName            string  `json:"cert_name"`
	Provider            string  `json:"provider"`
	CertDescription     *string `json:"cert_description"`
	RenewalPeriodMonths *int    `json:"renewal_period_months"`
}

// Validate validates the CreateCertificationRequest
func (r *CreateCertificationRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.DomainID,
			validation.Required.Error("domain_id is required"),
			validation.Min(int64(1)).Error("domain_id must be positive"),
		),
		validation.Field(&r.CertName,
			validation.Required.Error("cert_name is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Provider,
			validation.Required.Error("provider is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateCertificationRequest represents the API request for a partial catalog
// update. Nil pointers mean "leave unchanged".
type UpdateCertificationRequest struct {
	DomainID            *int64  `json:"domain_id"`
	CertName            *string `json:"cert_name"`
	Provider            *string `json:"provider"`
	CertDescription     *string `json:"cert_description"`
	RenewalPeriodMonths *int    `json:"renewal_period_months"`
}

// CreateUserCertRequest represents the API request for tracking a
// certification. The token field is consumed by the authorization guard
// before binding. Dates are ISO "YYYY-MM-DD" strings.
type CreateUserCertRequest struct {
	Token            string `json:"token"`
	CertificationID  int64  `json:"certification_id"`
	Status           string `json:"status"`
	EarnedOn         string `json:"earned_on"`
	ExpiresOn        string `json:"expires_on"`
	CEHoursRequired  *int   `json:"ce_hours_required"`
	CEHoursCompleted *int   `json:"ce_hours_completed"`
}

// Validate validates the CreateUserCertRequest
func (r *CreateUserCertRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.CertificationID,
			validation.Required.Error("certification_id is required"),
			validation.Min(int64(1)).Error("certification_id must be positive"),
		),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.EarnedOn, appValidation.ISODate),
		validation.Field(&r.ExpiresOn, appValidation.ISODate),
	)
	return appValidation.WrapValidationError(err)
}

// ListUserCertsRequest carries the guard token and an optional record filter;
// the owner scope comes from the authenticated identity.
type ListUserCertsRequest struct {
	Token      string `json:"token"`
	UserCertID *int64 `json:"user_cert_id"`
}

// UpdateUserCertRequest represents the API request for a partial update of a
// tracked certification. Date pointers distinguish "leave unchanged" (nil)
// from an explicit new value.
type UpdateUserCertRequest struct {
	Token            string  `json:"token"`
	UserCertID       int64   `json:"user_cert_id"`
	Status           *string `json:"status"`
	EarnedOn         *string `json:"earned_on"`
	ExpiresOn        *string `json:"expires_on"`
	CEHoursRequired  *int    `json:"ce_hours_required"`
	CEHoursCompleted *int    `json:"ce_hours_completed"`
}

// Validate validates the UpdateUserCertRequest
func (r *UpdateUserCertRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.UserCertID,
			validation.Required.Error("user_cert_id is required"),
			validation.Min(int64(1)).Error("user_cert_id must be positive"),
		),
		validation.Field(&r.EarnedOn, validation.By(optionalISODate)),
		validation.Field(&r.ExpiresOn, validation.By(optionalISODate)),
	)
	return appValidation.WrapValidationError(err)
}

// DeleteUserCertsRequest represents the API request for deleting tracked
// certifications. A nil UserCertID deletes every row the owner has.
type DeleteUserCertsRequest struct {
	Token      string `json:"token"`
	UserCertID *int64 `json:"user_cert_id"`
}

// optionalISODate validates a *string date field when it is set.
func optionalISODate(value any) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	return validation.Validate(*s, appValidation.ISODate)
}
