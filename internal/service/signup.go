package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"quickdesk-backend/internal/database/models"
	apperrors "quickdesk-backend/internal/errors"
	"quickdesk-backend/internal/logger"
	"quickdesk-backend/internal/notification"
	"quickdesk-backend/internal/otp"
	"quickdesk-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OTPSettings controls code lifetime and how many codes one signup attempt may receive
type OTPSettings struct {
	TTL      time.Duration
	MaxSends int
}

// DefaultOTPSettings returns a 3 minute lifetime and a budget of 3 codes
func DefaultOTPSettings() OTPSettings {
	return OTPSettings{TTL: 3 * time.Minute, MaxSends: 3}
}

// SignupService runs the OTP signup, resend and verification flows
type SignupService struct {
	otpRepo    repository.OtpRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	orgRepo    repository.OrganizationRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	sender     notification.Sender
	hasher     PasswordHasher
	tokens     SessionTokenIssuer
	validator  *Validator
	settings   OTPSettings
	otpSource
}

// otpSource holds the time source and code generator shared by the OTP flows
type otpSource struct {
	now          func() time.Time
	generateCode func() string
}

func newOTPSource(opts []Option) otpSource {
	src := otpSource{now: time.Now, generateCode: otp.GenerateCode}
	for _, opt := range opts {
		opt(&src)
	}
	return src
}

// Option customizes the OTP services
type Option func(*otpSource)

// WithClock replaces the time source
func WithClock(now func() time.Time) Option {
	return func(src *otpSource) { src.now = now }
}

// WithCodeGenerator replaces the OTP generator
func WithCodeGenerator(generate func() string) Option {
	return func(src *otpSource) { src.generateCode = generate }
}

// NewSignupService creates a new signup service
func NewSignupService(
	otpRepo repository.OtpRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	tenantRepo repository.TenantRepositoryInterface,
	sender notification.Sender,
	hasher PasswordHasher,
	tokens SessionTokenIssuer,
	validator *Validator,
	settings OTPSettings,
	opts ...Option,
) *SignupService {
	if settings.TTL <= 0 {
		settings.TTL = DefaultOTPSettings().TTL
	}
	if settings.MaxSends < 1 {
		settings.MaxSends = DefaultOTPSettings().MaxSends
	}
	return &SignupService{
		otpRepo:    otpRepo,
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		tenantRepo: tenantRepo,
		sender:     sender,
		hasher:     hasher,
		tokens:     tokens,
		validator:  validator,
		settings:   settings,
		otpSource:  newOTPSource(opts),
	}
}

// SignupRequest represents the signup form
type SignupRequest struct {
	OrganizationName string `json:"organizationName" validate:"required,max=100" example:"Acme"`
	Domain           string `json:"domain" validate:"required,fqdn,max=255" example:"acme.com"`
	Name             string `json:"name" validate:"required,max=200" example:"Jo"`
	Email            string `json:"email" validate:"required,email,max=255" example:"jo@acme.com"`
	Password         string `json:"password" validate:"required,min=6,max=72,maxbytes=72" example:"secret1"`
	ConfirmPassword  string `json:"confirmPassword" validate:"required,eqfield=Password" example:"secret1"`
}

func (r *SignupRequest) normalize() {
	r.OrganizationName = strings.TrimSpace(r.OrganizationName)
	r.Domain = strings.ToLower(strings.TrimSpace(r.Domain))
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
}

// SendOTPResponse represents the result of a signup submission
type SendOTPResponse struct {
	Success     bool   `json:"success" example:"true"`
	Message     string `json:"message" example:"Verification code sent to your email"`
	Email       string `json:"email" example:"jo@acme.com"`
	AlreadySent bool   `json:"alreadySent,omitempty" example:"false"`
}

// ResendOTPRequest represents a resend request
type ResendOTPRequest struct {
	Email string `json:"email" example:"jo@acme.com"`
}

// ResendOTPResponse represents the result of a resend
type ResendOTPResponse struct {
	Success     bool      `json:"success" example:"true"`
	ResendCount int       `json:"resendCount" example:"2"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// VerifyOTPRequest represents a code submission
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email" example:"jo@acme.com"`
	Otp   string `json:"otp" validate:"required" example:"482913"`
}

// VerifyOTPResponse represents a completed signup
type VerifyOTPResponse struct {
	Success        bool      `json:"success" example:"true"`
	UserID         uuid.UUID `json:"userId"`
	OrganizationID uuid.UUID `json:"organizationId"`
	Token          string    `json:"token,omitempty"`
}

// OTPExpirationResponse describes the active code for an email
type OTPExpirationResponse struct {
	ExpiresAt   time.Time `json:"expiresAt"`
	ResendCount int       `json:"resendCount" example:"1"`
}

const (
	msgCodeSent    = "Verification code sent to your email"
	msgAlreadySent = "A verification code has already been sent to your email"
)

// SendOTP validates a signup, emails a code and stores the pending registration
func (s *SignupService) SendOTP(ctx context.Context, req *SignupRequest) (*SendOTPResponse, error) {
	req.normalize()
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	log := logger.WithContext(logger.ContextWithUser(ctx, req.Email))

	orgExists, err := s.orgRepo.ExistsByNameOrDomain(ctx, req.OrganizationName, req.Domain)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if orgExists {
		return nil, apperrors.ErrOrganizationExists
	}

	userExists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if userExists {
		return nil, apperrors.ErrUserExists
	}

	now := s.now()
	existing, err := s.latestRecord(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !existing.IsExpired(now) {
			return s.alreadySent(req.Email), nil
		}
		if existing.ResendCount >= s.settings.MaxSends {
			if _, err := s.otpRepo.DeleteByEmail(ctx, req.Email); err != nil {
				return nil, fmt.Errorf("failed to delete exhausted otp record: %w", err)
			}
			log.Info("replaced exhausted otp record")
			existing = nil
		}
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	payload, err := json.Marshal(models.PendingSignup{
		OrganizationName: req.OrganizationName,
		Domain:           req.Domain,
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     passwordHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode pending signup: %w", err)
	}

	code := s.generateCode()
	expiresAt := now.Add(s.settings.TTL)
	if err := s.sender.SendOTP(ctx, notification.OTPMessage{
		To:        req.Email,
		Code:      code,
		Purpose:   notification.PurposeSignup,
		ExpiresIn: s.settings.TTL,
	}); err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Code = code
		existing.ExpiresAt = expiresAt
		existing.ResendCount++
		existing.PendingPayload = datatypes.JSON(payload)
		if err := s.otpRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update otp record: %w", err)
		}
	} else {
		record := &models.OtpRecord{
			Email:          req.Email,
			Code:           code,
			ExpiresAt:      expiresAt,
			ResendCount:    1,
			PendingPayload: datatypes.JSON(payload),
		}
		if err := s.otpRepo.Create(ctx, record); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent submission for the same email stored its code first
				return s.alreadySent(req.Email), nil
			}
			return nil, fmt.Errorf("failed to create otp record: %w", err)
		}
	}

	log.Info("signup verification code sent")
	return &SendOTPResponse{Success: true, Message: msgCodeSent, Email: req.Email}, nil
}

func (s *SignupService) alreadySent(email string) *SendOTPResponse {
	return &SendOTPResponse{Success: true, Message: msgAlreadySent, Email: email, AlreadySent: true}
}

// latestRecord returns nil without error when the email has no record
func (s *SignupService) latestRecord(ctx context.Context, email string) (*models.OtpRecord, error) {
	record, err := s.otpRepo.GetLatestByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load otp record: %w", err)
	}
	return record, nil
}

// ResendOTP issues a fresh code for an existing signup attempt. Once the
// budget is spent the attempt is discarded and the user must sign up again.
func (s *SignupService) ResendOTP(ctx context.Context, email string) (*ResendOTPResponse, error) {
	email = normalizeEmail(email)
	if err := requireEmail(email); err != nil {
		return nil, err
	}
	log := logger.WithContext(logger.ContextWithUser(ctx, email))

	record, err := s.latestRecord(ctx, email)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.ErrOtpNotFound
	}

	if record.ResendCount >= s.settings.MaxSends {
		if _, err := s.otpRepo.DeleteByEmail(ctx, email); err != nil {
			return nil, fmt.Errorf("failed to delete exhausted otp record: %w", err)
		}
		log.WithField("resend_count", record.ResendCount).Warn("resend limit reached")
		return nil, apperrors.ErrResendLimitReached
	}

	code := s.generateCode()
	expiresAt := s.now().Add(s.settings.TTL)
	if err := s.sender.SendOTP(ctx, notification.OTPMessage{
		To:        email,
		Code:      code,
		Purpose:   notification.PurposeSignup,
		ExpiresIn: s.settings.TTL,
	}); err != nil {
		return nil, err
	}

	record.Code = code
	record.ExpiresAt = expiresAt
	record.ResendCount++
	if err := s.otpRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update otp record: %w", err)
	}

	log.WithField("resend_count", record.ResendCount).Info("signup verification code resent")
	return &ResendOTPResponse{Success: true, ResendCount: record.ResendCount, ExpiresAt: expiresAt}, nil
}

// VerifyOTP checks a submitted code and, when it matches and is still valid,
// creates the user, organization and admin membership in one transaction.
// Mismatched and expired codes leave the record in place.
func (s *SignupService) VerifyOTP(ctx context.Context, req *VerifyOTPRequest) (*VerifyOTPResponse, error) {
	req.Email = normalizeEmail(req.Email)
	req.Otp = strings.TrimSpace(req.Otp)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	log := logger.WithContext(logger.ContextWithUser(ctx, req.Email))

	record, err := s.latestRecord(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.ErrOtpNotFound
	}
	if record.Code != req.Otp {
		return nil, apperrors.ErrInvalidOtp
	}
	now := s.now()
	if record.IsExpired(now) {
		return nil, apperrors.ErrOtpExpired
	}

	var signup models.PendingSignup
	if err := json.Unmarshal(record.PendingPayload, &signup); err != nil {
		return nil, fmt.Errorf("failed to decode pending signup: %w", err)
	}

	result, err := s.tenantRepo.CreateTenant(ctx, repository.CreateTenantParams{
		Email:  req.Email,
		Code:   req.Otp,
		Now:    now,
		Signup: signup,
	})
	if err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	response := &VerifyOTPResponse{
		Success:        true,
		UserID:         result.User.ID,
		OrganizationID: result.Organization.ID,
	}
	// Tenant is already committed; a token failure is logged, not returned
	token, err := s.tokens.Issue(result.User.ID, result.User.Email)
	if err != nil {
		log.WithError(err).Error("failed to issue session token")
	} else {
		response.Token = token
	}

	log.WithFields(map[string]interface{}{
		"user_id":         result.User.ID,
		"organization_id": result.Organization.ID,
	}).Info("signup verified, tenant created")
	return response, nil
}

// GetOTPExpiration returns when the active code for an email expires
func (s *SignupService) GetOTPExpiration(ctx context.Context, email string) (*OTPExpirationResponse, error) {
	email = normalizeEmail(email)
	if err := requireEmail(email); err != nil {
		return nil, err
	}

	record, err := s.latestRecord(ctx, email)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.ErrOtpNotFound
	}
	return &OTPExpirationResponse{ExpiresAt: record.ExpiresAt, ResendCount: record.ResendCount}, nil
}

// DeleteExpiredOTP removes the record for an email if it has expired and
// reports how many rows were deleted
func (s *SignupService) DeleteExpiredOTP(ctx context.Context, email string) (int64, error) {
	email = normalizeEmail(email)
	if err := requireEmail(email); err != nil {
		return 0, err
	}

	deleted, err := s.otpRepo.DeleteExpiredByEmail(ctx, email, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired otp record: %w", err)
	}
	return deleted, nil
}
