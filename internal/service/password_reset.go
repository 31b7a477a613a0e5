package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quickdesk-backend/internal/database/models"
	apperrors "quickdesk-backend/internal/errors"
	"quickdesk-backend/internal/logger"
	"quickdesk-backend/internal/notification"
	"quickdesk-backend/internal/repository"

	"gorm.io/gorm"
)

// PasswordResetService runs the password reset OTP flow
type PasswordResetService struct {
	userRepo  repository.UserRepositoryInterface
	resetRepo repository.PasswordResetRepositoryInterface
	sender    notification.Sender
	hasher    PasswordHasher
	validator *Validator
	settings  OTPSettings
	otpSource
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo repository.UserRepositoryInterface,
	resetRepo repository.PasswordResetRepositoryInterface,
	sender notification.Sender,
	hasher PasswordHasher,
	validator *Validator,
	settings OTPSettings,
	opts ...Option,
) *PasswordResetService {
	if settings.TTL <= 0 {
		settings.TTL = DefaultOTPSettings().TTL
	}
	if settings.MaxSends < 1 {
		settings.MaxSends = DefaultOTPSettings().MaxSends
	}
	return &PasswordResetService{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		sender:    sender,
		hasher:    hasher,
		validator: validator,
		settings:  settings,
		otpSource: newOTPSource(opts),
	}
}

// ResetPasswordRequest represents a reset code submission with the new password
type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email" example:"jo@acme.com"`
	Otp             string `json:"otp" validate:"required" example:"135790"`
	Password        string `json:"password" validate:"required,min=6,max=72,maxbytes=72" example:"new-secret"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password" example:"new-secret"`
}

// PasswordResetOTPResponse represents a sent reset code
type PasswordResetOTPResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"Password reset code sent to your email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RequestReset emails a reset code to an existing user. Unknown addresses and
// addresses that already received MaxSends live codes get the same response
// without an email, so the endpoint does not reveal which emails are registered.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) (*PasswordResetOTPResponse, error) {
	email = normalizeEmail(email)
	if err := requireEmail(email); err != nil {
		return nil, err
	}

	log := logger.WithContext(logger.ContextWithUser(ctx, email))
	now := s.now()
	expiresAt := now.Add(s.settings.TTL)
	sent := &PasswordResetOTPResponse{
		Success:   true,
		Message:   "Password reset code sent to your email",
		ExpiresAt: expiresAt,
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Info("password reset requested for unknown email")
			return sent, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	sendCount := 1
	existing, err := s.resetRepo.GetByEmail(ctx, email)
	switch {
	case err == nil && !existing.IsExpired(now):
		if existing.SendCount >= s.settings.MaxSends {
			log.WithField("send_count", existing.SendCount).Warn("password reset send limit reached")
			return sent, nil
		}
		sendCount = existing.SendCount + 1
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to load password reset code: %w", err)
	}

	code := s.generateCode()
	if err := s.sender.SendOTP(ctx, notification.OTPMessage{
		To:        email,
		Code:      code,
		Purpose:   notification.PurposePasswordReset,
		ExpiresIn: s.settings.TTL,
	}); err != nil {
		return nil, err
	}

	if err := s.resetRepo.Upsert(ctx, &models.PasswordResetOtp{
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
		SendCount: sendCount,
	}); err != nil {
		return nil, fmt.Errorf("failed to store password reset code: %w", err)
	}

	log.WithField("send_count", sendCount).Info("password reset code sent")
	return sent, nil
}

// ResetPassword checks the reset code and stores the new password. An expired
// code is deleted as soon as it is presented.
func (s *PasswordResetService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	req.Email = normalizeEmail(req.Email)
	req.Otp = strings.TrimSpace(req.Otp)
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	record, err := s.resetRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPasswordResetNotFound
		}
		return fmt.Errorf("failed to load password reset code: %w", err)
	}
	if record.Code != req.Otp {
		return apperrors.ErrInvalidOtp
	}

	now := s.now()
	if record.IsExpired(now) {
		if _, err := s.resetRepo.DeleteByEmail(ctx, req.Email); err != nil {
			return fmt.Errorf("failed to delete expired password reset code: %w", err)
		}
		return apperrors.ErrOtpExpired
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ResetPassword(ctx, repository.ResetPasswordParams{
		Email:        req.Email,
		Code:         req.Otp,
		PasswordHash: passwordHash,
		Now:          now,
	}); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to reset password: %w", err)
	}

	logger.WithContext(logger.ContextWithUser(ctx, req.Email)).Info("password reset")
	return nil
}
