package repository

import (
	"context"
	"time"

	"quickdesk-backend/internal/database/models"
	apperrors "quickdesk-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResetPasswordParams identifies the reset code being consumed and the new hash
type ResetPasswordParams struct {
	Email        string
	Code         string
	PasswordHash string
	Now          time.Time
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether a user with the email exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ResetPassword consumes the matching unexpired reset code and stores the new
// password hash in one transaction
func (r *UserRepository) ResetPassword(ctx context.Context, params ResetPasswordParams) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		consumed := tx.Where("email = ? AND code = ? AND expires_at > ?", params.Email, params.Code, params.Now).
			Delete(&models.PasswordResetOtp{})
		if consumed.Error != nil {
			return consumed.Error
		}
		if consumed.RowsAffected != 1 {
			return apperrors.ErrPasswordResetNotFound
		}

		updated := tx.Model(&models.User{}).
			Where("email = ?", params.Email).
			Update("password_hash", params.PasswordHash)
		if updated.Error != nil {
			return updated.Error
		}
		if updated.RowsAffected != 1 {
			return apperrors.ErrUserNotFound
		}
		return nil
	})
}
