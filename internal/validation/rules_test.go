package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/studybuddy/certtracker/internal/errors"
)

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("value"))
	assert.Error(t, NotBlank.Validate("   "))

	// The rule must reject the empty string on its own, without relying on
	// a paired Required rule.
	err := NotBlank.Validate("")
	assert.Error(t, err)
	assert.EqualError(t, err, "must not be blank")
}

func TestUsername(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"alice123", true},
		{"alice.smith", true},
		{"alice_smith-2", true},
		{"alice smith", false},
		{"alice!", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := Username.Validate(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestISODate(t *testing.T) {
	assert.NoError(t, ISODate.Validate("2025-06-30"))
	assert.NoError(t, ISODate.Validate(""))
	assert.Error(t, ISODate.Validate("30/06/2025"))
	assert.Error(t, ISODate.Validate("2025-13-01"))
	assert.Error(t, ISODate.Validate("not-a-date"))
}

func TestWrapValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil))

	err := WrapValidationError(apperrors.New("name is required"))
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	assert.Equal(t, "name is required", err.Error())
}
