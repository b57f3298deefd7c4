// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/studybuddy/certtracker/internal/errors"
)

var (
	// usernameRegex allows letters, digits, dots, underscores and hyphens
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]+$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.NewClassified(apperrors.ErrInvalidInput, err.Error())
}

// errNotBlank is the error returned by NotBlank.
var errNotBlank = validation.NewError("validation_not_blank", "must not be blank")

// NotBlank validates that a string is not empty after trimming whitespace.
// Built on validation.By because plain string rules skip empty values, and
// this rule must reject the empty string on its own.
var NotBlank = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_not_blank_type", "must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return errNotBlank
	}
	return nil
})

// Username validates the allowed username character set
var Username = validation.NewStringRuleWithError(
	func(s string) bool {
		return usernameRegex.MatchString(s)
	},
	validation.NewError(
		"validation_username_format",
		"must contain only letters, numbers, dots, underscores or hyphens",
	),
)

// ISODate validates a "YYYY-MM-DD" date string. Empty strings pass; combine
// with validation.Required when the field is mandatory.
var ISODate = validation.NewStringRuleWithError(
	func(s string) bool {
		if s == "" {
			return true
		}
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	},
	validation.NewError("validation_iso_date", "must be a date in YYYY-MM-DD format"),
)
