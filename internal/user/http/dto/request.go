// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/studybuddy/certtracker/internal/validation"
)

// RegisterRequest represents the API request for account registration
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Industry  string `json:"industry"`
	UserRole  string `json:"user_role"`
}

// Validate validates the RegisterRequest using the jellydator/validation library
func (r *RegisterRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first_name is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last_name is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// LoginRequest represents the API request for a login attempt
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the LoginRequest
func (r *LoginRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateProfileRequest represents the API request for a partial profile update.
// The token field is consumed by the authorization guard before binding; it is
// declared here so strict decoding does not reject it.
type UpdateProfileRequest struct {
	Token     string  `json:"token"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Industry  *string `json:"industry"`
	UserRole  *string `json:"user_role"`
	Bio       *string `json:"bio"`
}
