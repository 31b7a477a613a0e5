package service

import (
	"strings"
	"testing"

	apperrors "quickdesk-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_TranslatesFieldMessages(t *testing.T) {
	v := NewValidator()

	err := v.Struct(&SignupRequest{
		OrganizationName: "Acme",
		Domain:           "acme.com",
		Name:             "Jo",
		Email:            "jo@gmail.com",
		Password:         "abc",
		ConfirmPassword:  "abd",
	})
	require.Error(t, err)
	require.True(t, apperrors.IsValidation(err))

	fields := apperrors.ValidationFields(err)
	assert.Equal(t, "email must be an address at acme.com", fields["email"])
	assert.Equal(t, "password must be at least 6 characters in length", fields["password"])
	assert.Contains(t, fields, "confirmPassword")
	assert.NotContains(t, fields, "name")
}

func TestValidator_ValidSignup(t *testing.T) {
	err := NewValidator().Struct(&SignupRequest{
		OrganizationName: "Acme",
		Domain:           "acme.com",
		Name:             "Jo",
		Email:            "jo@acme.com",
		Password:         "secret1",
		ConfirmPassword:  "secret1",
	})
	assert.NoError(t, err)
}

func TestValidator_PasswordByteLimit(t *testing.T) {
	v := NewValidator()

	ascii := strings.Repeat("a", 72)
	assert.NoError(t, v.Struct(&ResetPasswordRequest{Email: "jo@acme.com", Otp: "135790", Password: ascii, ConfirmPassword: ascii}))

	// 40 characters, 80 bytes
	accented := strings.Repeat("é", 40)
	err := v.Struct(&ResetPasswordRequest{Email: "jo@acme.com", Otp: "135790", Password: accented, ConfirmPassword: accented})
	require.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "password must be at most 72 bytes long", apperrors.ValidationFields(err)["password"])
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jo@acme.com", normalizeEmail("  JO@Acme.COM "))
	assert.True(t, apperrors.IsValidation(requireEmail("")))
	assert.NoError(t, requireEmail("jo@acme.com"))
}
