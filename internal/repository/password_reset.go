package repository

import (
	"context"
	"time"

	"quickdesk-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PasswordResetRepository handles database operations for password reset codes
type PasswordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository creates a new password reset repository
func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// Upsert creates the reset record for an email or replaces its code, expiry and send count
func (r *PasswordResetRepository) Upsert(ctx context.Context, record *models.PasswordResetOtp) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "send_count", "updated_at"}),
	}).Create(record).Error
}

// GetByEmail retrieves the reset record for an email
func (r *PasswordResetRepository) GetByEmail(ctx context.Context, email string) (*models.PasswordResetOtp, error) {
	var record models.PasswordResetOtp
	err := r.db.WithContext(ctx).First(&record, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteByEmail deletes the reset record for an email
func (r *PasswordResetRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := r.db.WithContext(ctx).Where("email = ?", email).Delete(&models.PasswordResetOtp{})
	return result.RowsAffected, result.Error
}

// DeleteExpired deletes every expired reset record
func (r *PasswordResetRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.PasswordResetOtp{})
	return result.RowsAffected, result.Error
}
