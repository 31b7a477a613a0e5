package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness conflict (ConflictError)
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error. Fields carries one message per
// offending input field when the failure came from struct validation.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s - %s", k, e.Fields[k]))
		}
		return fmt.Sprintf("validation error: %s", strings.Join(parts, "; "))
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidCodeError is returned when a submitted one-time code does not match
type InvalidCodeError struct {
	Message string
}

func (e *InvalidCodeError) Error() string {
	return e.Message
}

// ExpiredError is returned when a one-time code is past its expiry
type ExpiredError struct {
	Message string
}

func (e *ExpiredError) Error() string {
	return e.Message
}

// LimitExceededError is returned when the resend budget is exhausted
type LimitExceededError struct {
	Message string
}

func (e *LimitExceededError) Error() string {
	return e.Message
}

// DeliveryError represents a failed call to the mail provider
type DeliveryError struct {
	Message string
	Err     error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOtpNotFound           = &NotFoundError{Entity: "otp record"}
	ErrPasswordResetNotFound = &NotFoundError{Entity: "password reset request"}
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrOrganizationNotFound  = &NotFoundError{Entity: "organization"}
	ErrMembershipNotFound    = &NotFoundError{Entity: "membership"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name or domain"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// One-time code errors
var (
	ErrInvalidOtp         = &InvalidCodeError{Message: "invalid verification code"}
	ErrOtpExpired         = &ExpiredError{Message: "verification code has expired"}
	ErrResendLimitReached = &LimitExceededError{Message: "maximum number of codes reached, please sign up again"}
)

// Authentication Errors
var (
	ErrMissingCronSecret = &AuthenticationError{Message: "missing authorization"}
	ErrInvalidCronSecret = &AuthenticationError{Message: "invalid authorization"}
	ErrInvalidToken      = &AuthenticationError{Message: "invalid or expired token"}
)

// Configuration Errors
var (
	ErrMailConfigMissing = &ConfigurationError{Message: "mail configuration missing: MAIL_SENDER_ADDRESS, MS_CLIENT_ID, MS_TENANT_ID or MS_CLIENT_SECRET"}
	ErrSMTPConfigMissing = &ConfigurationError{Message: "smtp configuration missing: SMTP_HOST, SMTP_PORT or SMTP_FROM"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidCode checks if an error is an InvalidCodeError
func IsInvalidCode(err error) bool {
	var codeErr *InvalidCodeError
	return errors.As(err, &codeErr)
}

// IsExpired checks if an error is an ExpiredError
func IsExpired(err error) bool {
	var expiredErr *ExpiredError
	return errors.As(err, &expiredErr)
}

// IsLimitExceeded checks if an error is a LimitExceededError
func IsLimitExceeded(err error) bool {
	var limitErr *LimitExceededError
	return errors.As(err, &limitErr)
}

// IsDelivery checks if an error is a DeliveryError
func IsDelivery(err error) bool {
	var deliveryErr *DeliveryError
	return errors.As(err, &deliveryErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// ValidationFields returns the per-field messages of a ValidationError, if any
func ValidationFields(err error) map[string]string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		if len(validationErr.Fields) > 0 {
			return validationErr.Fields
		}
		if validationErr.Field != "" {
			return map[string]string{validationErr.Field: validationErr.Message}
		}
	}
	return nil
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFieldValidationError creates a ValidationError listing per-field messages
func NewFieldValidationError(fields map[string]string) error {
	return &ValidationError{Message: "invalid input", Fields: fields}
}

// NewDeliveryError creates a new DeliveryError wrapping the provider failure
func NewDeliveryError(message string, err error) error {
	return &DeliveryError{Message: message, Err: err}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
