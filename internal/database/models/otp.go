package models

import (
	"time"

	"gorm.io/datatypes"
)

// OtpRecord holds the one-time code and pending registration for one signup
// attempt. Email is the natural key: there is at most one record per address.
type OtpRecord struct {
	BaseModel
	Email          string         `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Code           string         `json:"-" gorm:"not null;size:6"`
	ExpiresAt      time.Time      `json:"expires_at" gorm:"not null;index"`
	ResendCount    int            `json:"resend_count" gorm:"not null;default:1"`
	PendingPayload datatypes.JSON `json:"-" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for OtpRecord
func (OtpRecord) TableName() string {
	return "otp_records"
}

// IsExpired reports whether the code is no longer valid at now
func (o *OtpRecord) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// PendingSignup is the validated signup form kept in OtpRecord.PendingPayload
// until the code is verified. PasswordHash is already bcrypt hashed.
type PendingSignup struct {
	OrganizationName string `json:"organizationName"`
	Domain           string `json:"domain"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	PasswordHash     string `json:"passwordHash"`
}
