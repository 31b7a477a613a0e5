package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Priority names used as keys of an organization's deadline settings
const (
	PriorityUrgent = "Urgent"
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// DefaultDeadlineSettings returns the days-to-deadline per ticket priority that
// every new organization starts with.
func DefaultDeadlineSettings() datatypes.JSONMap {
	return datatypes.JSONMap{
		PriorityUrgent: 1,
		PriorityHigh:   2,
		PriorityMedium: 3,
		PriorityLow:    4,
	}
}

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name             string            `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Domain           string            `json:"domain" gorm:"uniqueIndex;not null;size:255" validate:"required,fqdn,max=255"`
	OwnerID          uuid.UUID         `json:"owner_id" gorm:"type:uuid;not null;index"`
	DeadlineSettings datatypes.JSONMap `json:"deadline_settings" gorm:"type:jsonb;not null"`

	// Relationships
	Owner   *User                `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
	Members []OrganizationMember `json:"members,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
