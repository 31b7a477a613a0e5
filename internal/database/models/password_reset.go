package models

import (
	"time"
)

// PasswordResetOtp holds the one-time code of a pending password reset
type PasswordResetOtp struct {
	BaseModel
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Code      string    `json:"-" gorm:"not null;size:6"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	SendCount int       `json:"send_count" gorm:"not null;default:1"`
}

// TableName returns the table name for PasswordResetOtp
func (PasswordResetOtp) TableName() string {
	return "password_reset_otps"
}

// IsExpired reports whether the code is no longer valid at now
func (p *PasswordResetOtp) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
