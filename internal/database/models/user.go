package models

import (
	"time"
)

// User is the credential identity created when a signup is verified
type User struct {
	BaseModel
	Name            string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email           string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash    string     `json:"-" gorm:"not null;size:100"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
