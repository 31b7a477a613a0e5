package service

import (
	"context"
	"fmt"
	"time"

	"quickdesk-backend/internal/logger"
	"quickdesk-backend/internal/repository"
)

// CleanupService removes expired signup and password reset codes
type CleanupService struct {
	otpRepo   repository.OtpRepositoryInterface
	resetRepo repository.PasswordResetRepositoryInterface
	otpSource
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(
	otpRepo repository.OtpRepositoryInterface,
	resetRepo repository.PasswordResetRepositoryInterface,
	opts ...Option,
) *CleanupService {
	return &CleanupService{
		otpRepo:   otpRepo,
		resetRepo: resetRepo,
		otpSource: newOTPSource(opts),
	}
}

// CleanupResult reports how many expired records were removed
type CleanupResult struct {
	Success           bool  `json:"success" example:"true"`
	SignupOTPs        int64 `json:"signupOtps" example:"3"`
	PasswordResetOTPs int64 `json:"passwordResetOtps" example:"1"`
	Deleted           int64 `json:"deleted" example:"4"`
}

// CleanupExpired deletes every expired signup and password reset code
func (s *CleanupService) CleanupExpired(ctx context.Context) (*CleanupResult, error) {
	now := s.now()

	signup, err := s.otpRepo.DeleteExpired(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expired otp records: %w", err)
	}
	reset, err := s.resetRepo.DeleteExpired(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expired password reset codes: %w", err)
	}

	result := &CleanupResult{
		Success:           true,
		SignupOTPs:        signup,
		PasswordResetOTPs: reset,
		Deleted:           signup + reset,
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"signup_otps":         signup,
		"password_reset_otps": reset,
	}).Info("expired codes cleaned up")
	return result, nil
}

// Run calls CleanupExpired every interval. Blocks until ctx is cancelled.
func (s *CleanupService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.CleanupExpired(ctx); err != nil {
				logger.WithContext(ctx).WithError(err).Error("scheduled otp cleanup failed")
			}
		case <-ctx.Done():
			return
		}
	}
}
