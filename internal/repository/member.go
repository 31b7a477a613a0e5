package repository

import (
	"context"

	"quickdesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for organization memberships
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// GetByUserID retrieves the oldest membership of a user with its organization loaded
func (r *MemberRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByOrganizationAndUser retrieves a membership by organization and user
func (r *MemberRepository) GetByOrganizationAndUser(ctx context.Context, orgID, userID uuid.UUID) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := r.db.WithContext(ctx).
		First(&member, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}
