package repository

import (
	"context"
	"time"

	"quickdesk-backend/internal/database/models"

	"gorm.io/gorm"
)

// OtpRepository handles database operations for signup OTP records
type OtpRepository struct {
	db *gorm.DB
}

// NewOtpRepository creates a new OTP repository
func NewOtpRepository(db *gorm.DB) *OtpRepository {
	return &OtpRepository{db: db}
}

// Create creates a new OTP record. A second record for the same email fails
// with gorm.ErrDuplicatedKey.
func (r *OtpRepository) Create(ctx context.Context, record *models.OtpRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetLatestByEmail retrieves the most recent OTP record for an email
func (r *OtpRepository) GetLatestByEmail(ctx context.Context, email string) (*models.OtpRecord, error) {
	var record models.OtpRecord
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update saves code, expiry, resend count and payload of an existing record
func (r *OtpRepository) Update(ctx context.Context, record *models.OtpRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// DeleteByEmail deletes every OTP record for an email
func (r *OtpRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := r.db.WithContext(ctx).Where("email = ?", email).Delete(&models.OtpRecord{})
	return result.RowsAffected, result.Error
}

// DeleteExpiredByEmail deletes the records for an email whose expiry is not after now
func (r *OtpRepository) DeleteExpiredByEmail(ctx context.Context, email string, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("email = ? AND expires_at <= ?", email, now).
		Delete(&models.OtpRecord{})
	return result.RowsAffected, result.Error
}

// DeleteExpired deletes every expired OTP record
func (r *OtpRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.OtpRecord{})
	return result.RowsAffected, result.Error
}
