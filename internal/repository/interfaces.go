package repository

import (
	"context"
	"time"

	"quickdesk-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OtpRepositoryInterface defines the interface for signup OTP record operations
type OtpRepositoryInterface interface {
	Create(ctx context.Context, record *models.OtpRecord) error
	GetLatestByEmail(ctx context.Context, email string) (*models.OtpRecord, error)
	Update(ctx context.Context, record *models.OtpRecord) error
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	DeleteExpiredByEmail(ctx context.Context, email string, now time.Time) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// PasswordResetRepositoryInterface defines the interface for password reset OTP operations
type PasswordResetRepositoryInterface interface {
	Upsert(ctx context.Context, record *models.PasswordResetOtp) error
	GetByEmail(ctx context.Context, email string) (*models.PasswordResetOtp, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ResetPassword(ctx context.Context, params ResetPasswordParams) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetByName(ctx context.Context, name string) (*models.Organization, error)
	GetByDomain(ctx context.Context, domain string) (*models.Organization, error)
	ExistsByNameOrDomain(ctx context.Context, name, domain string) (bool, error)
}

// MemberRepositoryInterface defines the interface for organization membership operations
type MemberRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.OrganizationMember, error)
	GetByOrganizationAndUser(ctx context.Context, orgID, userID uuid.UUID) (*models.OrganizationMember, error)
}

// TenantRepositoryInterface creates a user, its organization and the admin
// membership as one unit
type TenantRepositoryInterface interface {
	CreateTenant(ctx context.Context, params CreateTenantParams) (*TenantResult, error)
	SeedTenant(ctx context.Context, signup models.PendingSignup, now time.Time) (*TenantResult, error)
}
