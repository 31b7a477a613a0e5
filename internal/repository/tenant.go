package repository

import (
	"context"
	"errors"
	"time"

	"quickdesk-backend/internal/database/models"
	apperrors "quickdesk-backend/internal/errors"

	"gorm.io/gorm"
)

// CreateTenantParams identifies the OTP being consumed and the signup it carries
type CreateTenantParams struct {
	Email  string
	Code   string
	Now    time.Time
	Signup models.PendingSignup
}

// TenantResult holds the rows created for a new tenant
type TenantResult struct {
	User         *models.User
	Organization *models.Organization
	Member       *models.OrganizationMember
}

// TenantRepository creates tenants inside a single transaction
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// CreateTenant consumes the OTP record and creates the user, the organization
// and the admin membership. The OTP delete is conditional on code and expiry
// and must hit exactly one row, so of two concurrent verifications only one
// commits. Any failure rolls back every step.
func (r *TenantRepository) CreateTenant(ctx context.Context, params CreateTenantParams) (*TenantResult, error) {
	var result *TenantResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		consumed := tx.Where("email = ? AND code = ? AND expires_at > ?", params.Email, params.Code, params.Now).
			Delete(&models.OtpRecord{})
		if consumed.Error != nil {
			return consumed.Error
		}
		if consumed.RowsAffected != 1 {
			return apperrors.ErrOtpNotFound
		}

		created, err := createTenantRows(tx, params.Signup, params.Now)
		if err != nil {
			return err
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SeedTenant creates a tenant without an OTP record
func (r *TenantRepository) SeedTenant(ctx context.Context, signup models.PendingSignup, now time.Time) (*TenantResult, error) {
	var result *TenantResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := createTenantRows(tx, signup, now)
		if err != nil {
			return err
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func createTenantRows(tx *gorm.DB, signup models.PendingSignup, now time.Time) (*TenantResult, error) {
	verifiedAt := now
	user := &models.User{
		Name:            signup.Name,
		Email:           signup.Email,
		PasswordHash:    signup.PasswordHash,
		EmailVerifiedAt: &verifiedAt,
	}
	if err := tx.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, err
	}

	org := &models.Organization{
		Name:             signup.OrganizationName,
		Domain:           signup.Domain,
		OwnerID:          user.ID,
		DeadlineSettings: models.DefaultDeadlineSettings(),
	}
	if err := tx.Create(org).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, err
	}

	member := &models.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Role:           models.MemberRoleAdmin,
		Status:         models.MembershipStatusNotVerified,
		IsClient:       false,
	}
	if err := tx.Create(member).Error; err != nil {
		return nil, err
	}

	return &TenantResult{User: user, Organization: org, Member: member}, nil
}
