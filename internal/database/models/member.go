package models

import (
	"github.com/google/uuid"
)

// MemberRole represents the role of a member in an organization
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleAgent  MemberRole = "agent"
	MemberRoleClient MemberRole = "client"
)

// MembershipStatus tracks the organization-level email ownership check, which
// is separate from the signup OTP.
type MembershipStatus string

const (
	MembershipStatusNotVerified MembershipStatus = "not_verified"
	MembershipStatusVerified    MembershipStatus = "verified"
)

// OrganizationMember links a user to an organization
type OrganizationMember struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_members_org_user,priority:1" validate:"required"`
	UserID         uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_org_members_org_user,priority:2" validate:"required"`
	Role           MemberRole       `json:"role" gorm:"type:varchar(50);not null;default:'agent'"`
	Status         MembershipStatus `json:"status" gorm:"type:varchar(50);not null;default:'not_verified'"`
	IsClient       bool             `json:"is_client" gorm:"not null;default:false"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationMember
func (OrganizationMember) TableName() string {
	return "organization_members"
}
