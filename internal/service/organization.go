package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quickdesk-backend/internal/auth"
	"quickdesk-backend/internal/database/models"
	apperrors "quickdesk-backend/internal/errors"
	"quickdesk-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	orgRepo    repository.OrganizationRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(orgRepo repository.OrganizationRepositoryInterface, memberRepo repository.MemberRepositoryInterface) *OrganizationService {
	return &OrganizationService{
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
	}
}

// MembershipResponse describes the caller's membership
type MembershipResponse struct {
	Role     models.MemberRole       `json:"role" example:"admin"`
	Status   models.MembershipStatus `json:"status" example:"not_verified"`
	IsClient bool                    `json:"isClient" example:"false"`
}

// CurrentOrganizationResponse represents the caller's organization
type CurrentOrganizationResponse struct {
	ID               uuid.UUID              `json:"id"`
	Name             string                 `json:"name" example:"Acme"`
	Domain           string                 `json:"domain" example:"acme.com"`
	OwnerID          uuid.UUID              `json:"ownerId"`
	DeadlineSettings map[string]interface{} `json:"deadlineSettings"`
	Membership       MembershipResponse     `json:"membership"`
	CreatedAt        string                 `json:"createdAt"`
}

// GetCurrent returns the organization the authenticated user belongs to
func (s *OrganizationService) GetCurrent(ctx context.Context, identity auth.Identity) (*CurrentOrganizationResponse, error) {
	member, err := s.memberRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}

	org := member.Organization
	if org == nil {
		org, err = s.orgRepo.GetByID(ctx, member.OrganizationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOrganizationNotFound
			}
			return nil, fmt.Errorf("failed to load organization: %w", err)
		}
	}

	return &CurrentOrganizationResponse{
		ID:               org.ID,
		Name:             org.Name,
		Domain:           org.Domain,
		OwnerID:          org.OwnerID,
		DeadlineSettings: map[string]interface{}(org.DeadlineSettings),
		Membership: MembershipResponse{
			Role:     member.Role,
			Status:   member.Status,
			IsClient: member.IsClient,
		},
		CreatedAt: org.CreatedAt.Format(time.RFC3339),
	}, nil
}
