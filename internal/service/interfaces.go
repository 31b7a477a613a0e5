package service

import (
	"context"
	"time"

	"quickdesk-backend/internal/auth"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SignupServiceInterface defines the interface for the OTP signup flow
type SignupServiceInterface interface {
	SendOTP(ctx context.Context, req *SignupRequest) (*SendOTPResponse, error)
	ResendOTP(ctx context.Context, email string) (*ResendOTPResponse, error)
	VerifyOTP(ctx context.Context, req *VerifyOTPRequest) (*VerifyOTPResponse, error)
	GetOTPExpiration(ctx context.Context, email string) (*OTPExpirationResponse, error)
	DeleteExpiredOTP(ctx context.Context, email string) (int64, error)
}

// PasswordResetServiceInterface defines the interface for the password reset flow
type PasswordResetServiceInterface interface {
	RequestReset(ctx context.Context, email string) (*PasswordResetOTPResponse, error)
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
}

// CleanupServiceInterface defines the interface for expired code cleanup
type CleanupServiceInterface interface {
	CleanupExpired(ctx context.Context) (*CleanupResult, error)
	Run(ctx context.Context, interval time.Duration)
}

// OrganizationServiceInterface defines the interface for organization lookups
type OrganizationServiceInterface interface {
	GetCurrent(ctx context.Context, identity auth.Identity) (*CurrentOrganizationResponse, error)
}

// PasswordHasher hashes account passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// SessionTokenIssuer issues session tokens for newly created users
type SessionTokenIssuer interface {
	Issue(userID uuid.UUID, email string) (string, error)
}
