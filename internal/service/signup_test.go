package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"quickdesk-backend/internal/database/models"
	apperrors "quickdesk-backend/internal/errors"
	"quickdesk-backend/internal/mocks"
	"quickdesk-backend/internal/notification"
	"quickdesk-backend/internal/repository"
	"quickdesk-backend/internal/security"
	"quickdesk-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SignupServiceTestSuite defines the test suite for SignupService
type SignupServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockOtpRepo    *mocks.MockOtpRepositoryInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockOrgRepo    *mocks.MockOrganizationRepositoryInterface
	mockTenantRepo *mocks.MockTenantRepositoryInterface
	mockSender     *mocks.MockSender
	mockTokens     *mocks.MockSessionTokenIssuer
	hasher         *security.Hasher
	signupService  *service.SignupService
	ctx            context.Context
	now            time.Time
	nextCode       string
}

// SetupTest sets up the test suite
func (suite *SignupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOtpRepo = mocks.NewMockOtpRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockSender = mocks.NewMockSender(suite.ctrl)
	suite.mockTokens = mocks.NewMockSessionTokenIssuer(suite.ctrl)
	suite.hasher = security.NewHasher(bcrypt.MinCost)
	suite.ctx = context.Background()
	suite.now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	suite.nextCode = "482913"

	suite.signupService = service.NewSignupService(
		suite.mockOtpRepo,
		suite.mockUserRepo,
		suite.mockOrgRepo,
		suite.mockTenantRepo,
		suite.mockSender,
		suite.hasher,
		suite.mockTokens,
		service.NewValidator(),
		service.DefaultOTPSettings(),
		service.WithClock(func() time.Time { return suite.now }),
		service.WithCodeGenerator(func() string { return suite.nextCode }),
	)
}

// TearDownTest cleans up after each test
func (suite *SignupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func acmeSignup() *service.SignupRequest {
	return &service.SignupRequest{
		OrganizationName: "Acme",
		Domain:           "acme.com",
		Name:             "Jo",
		Email:            "jo@acme.com",
		Password:         "secret1",
		ConfirmPassword:  "secret1",
	}
}

func (suite *SignupServiceTestSuite) expectNoConflicts() {
	suite.mockOrgRepo.EXPECT().ExistsByNameOrDomain(gomock.Any(), "Acme", "acme.com").Return(false, nil)
	suite.mockUserRepo.EXPECT().ExistsByEmail(gomock.Any(), "jo@acme.com").Return(false, nil)
}

func (suite *SignupServiceTestSuite) existingRecord(expiresAt time.Time, resendCount int) *models.OtpRecord {
	payload, _ := json.Marshal(models.PendingSignup{
		OrganizationName: "Acme",
		Domain:           "acme.com",
		Name:             "Jo",
		Email:            "jo@acme.com",
		PasswordHash:     "$2a$04$stored",
	})
	return &models.OtpRecord{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Email:          "jo@acme.com",
		Code:           "111111",
		ExpiresAt:      expiresAt,
		ResendCount:    resendCount,
		PendingPayload: datatypes.JSON(payload),
	}
}

// TestSendOTPNewSignup tests a first submission storing a hashed pending signup
func (suite *SignupServiceTestSuite) TestSendOTPNewSignup() {
	suite.expectNoConflicts()
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), notification.OTPMessage{
		To:        "jo@acme.com",
		Code:      "482913",
		Purpose:   notification.PurposeSignup,
		ExpiresIn: 3 * time.Minute,
	}).Return(nil)

	var created *models.OtpRecord
	suite.mockOtpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.OtpRecord) error {
			created = record
			return nil
		})

	response, err := suite.signupService.SendOTP(suite.ctx, acmeSignup())

	suite.Require().NoError(err)
	suite.True(response.Success)
	suite.False(response.AlreadySent)
	suite.Equal("jo@acme.com", response.Email)

	suite.Require().NotNil(created)
	suite.Equal("482913", created.Code)
	suite.Equal(1, created.ResendCount)
	suite.Equal(suite.now.Add(3*time.Minute), created.ExpiresAt)

	var pending models.PendingSignup
	suite.Require().NoError(json.Unmarshal(created.PendingPayload, &pending))
	suite.Equal("Acme", pending.OrganizationName)
	suite.Equal("acme.com", pending.Domain)
	suite.NotContains(string(created.PendingPayload), "secret1")
	suite.NoError(suite.hasher.Compare(pending.PasswordHash, "secret1"))
}

// TestSendOTPNormalizesInput tests trimming and lowercasing before any lookup
func (suite *SignupServiceTestSuite) TestSendOTPNormalizesInput() {
	req := acmeSignup()
	req.Email = "  Jo@ACME.com "
	req.Domain = "ACME.com"
	req.OrganizationName = " Acme "

	suite.expectNoConflicts()
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockOtpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	response, err := suite.signupService.SendOTP(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("jo@acme.com", response.Email)
}

// TestSendOTPValidation tests per-field validation failures without side effects
func (suite *SignupServiceTestSuite) TestSendOTPValidation() {
	testCases := []struct {
		name   string
		mutate func(*service.SignupRequest)
		field  string
	}{
		{name: "email outside domain", mutate: func(r *service.SignupRequest) { r.Email = "jo@gmail.com" }, field: "email"},
		{name: "invalid email", mutate: func(r *service.SignupRequest) { r.Email = "not-an-email" }, field: "email"},
		{name: "short password", mutate: func(r *service.SignupRequest) { r.Password, r.ConfirmPassword = "abc", "abc" }, field: "password"},
		{name: "password mismatch", mutate: func(r *service.SignupRequest) { r.ConfirmPassword = "secret2" }, field: "confirmPassword"},
		{name: "missing organization", mutate: func(r *service.SignupRequest) { r.OrganizationName = "  " }, field: "organizationName"},
		{name: "invalid domain", mutate: func(r *service.SignupRequest) { r.Domain = "acme" }, field: "domain"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := acmeSignup()
			tc.mutate(req)

			response, err := suite.signupService.SendOTP(suite.ctx, req)

			suite.Nil(response)
			suite.True(apperrors.IsValidation(err))
			suite.Contains(apperrors.ValidationFields(err), tc.field)
		})
	}
}

// TestSendOTPRejectsOverlongMultiBytePassword tests that a password within 72 characters
// but over 72 bytes fails validation instead of reaching the hasher
func (suite *SignupServiceTestSuite) TestSendOTPRejectsOverlongMultiBytePassword() {
	req := acmeSignup()
	req.Password = strings.Repeat("é", 40)
	req.ConfirmPassword = req.Password
	suite.mockOrgRepo.EXPECT().ExistsByNameOrDomain(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	suite.mockOtpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Times(0)

	response, err := suite.signupService.SendOTP(suite.ctx, req)

	suite.Nil(response)
	suite.True(apperrors.IsValidation(err))
	suite.Equal("password must be at most 72 bytes long", apperrors.ValidationFields(err)["password"])
}

// TestSendOTPOrganizationExists tests the organization conflict
func (suite *SignupServiceTestSuite) TestSendOTPOrganizationExists() {
	suite.mockOrgRepo.EXPECT().ExistsByNameOrDomain(gomock.Any(), "Acme", "acme.com").Return(true, nil)

	response, err := suite.signupService.SendOTP(suite.ctx, acmeSignup())

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrOrganizationExists)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestSendOTPUserExists tests the user conflict
func (suite *SignupServiceTestSuite) TestSendOTPUserExists() {
	suite.mockOrgRepo.EXPECT().ExistsByNameOrDomain(gomock.Any(), "Acme", "acme.com").Return(false, nil)
	suite.mockUserRepo.EXPECT().ExistsByEmail(gomock.Any(), "jo@acme.com").Return(true, nil)

	response, err := suite.signupService.SendOTP(suite.ctx, acmeSignup())

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestSendOTPAlreadySent tests that an unexpired record short-circuits without a new code
func (suite *SignupServiceTestSuite) TestSendOTPAlreadySent() {
	suite.expectNoConflicts()
	record := suite.existingRecord(suite.now.Add(time.Minute), 1)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)

	response, err := suite.signupService.SendOTP(suite.ctx, acmeSignup())

	suite.Require().NoError(err)
	suite.True(response.Success)
	suite.True(response.AlreadySent)
	suite.Equal("111111", record.Code)
}

// TestSendOTPReplacesExpiredRecord tests re-sending on an expired record within budget
func (suite *SignupServiceTestSuite) TestSendOTPReplacesExpiredRecord() {
	suite.expectNoConflicts()
	record := suite.existingRecord(suite.now.Add(-time.Second), 1)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockOtpRepo.EXPECT().Update(gomock.Any(), record).Return(nil)

	response, err := suite.signupService.SendOTP(suite.ctx, acmeSignup())

	suite.Require().NoError(err)
	suite.False(response.AlreadySent)
	suite.Equal("482913", record.Code)
	suite.Equal(2, record.ResendCount)
	suite.Equal(suite.now.Add(3*time.Minute), record.ExpiresAt)
}

// TestSendOTPExhaustedRecordStartsOver tests that a spent budget is discarded and a fresh attempt created
func (suite *SignupServiceTestSuite) TestSendOTPExhaustedRecordStartsOver() {
	suite.expectNoConflicts()
	record := suite.existingRecord(suite.now.Add(-time.Minute), 3)
	gomock.InOrder(
		suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil),
		suite.mockOtpRepo.EXPECT().DeleteByEmail(gomock.Any(), "jo@acme.com").Return(int64(1), nil),
		suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(nil),
		suite.mockOtpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, created *models.OtpRecord) error {
				suite.Equal(1, created.ResendCount)
				return nil
			}),
	)

	response, err := suite.signupService.SendOTP(suite.ctx, acmeSignup())

	suite.Require().NoError(err)
	suite.True(response.Success)
}

// TestSendOTPDeliveryFailureCreatesNothing tests that a failed send persists nothing
func (suite *SignupServiceTestSuite) TestSendOTPDeliveryFailureCreatesNothing() {
	suite.expectNoConflicts()
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).
		Return(apperrors.NewDeliveryError("failed to send email", errors.New("503")))
	suite.mockOtpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	response, err := suite.signupService.SendOTP(suite.ctx, acmeSignup())

	suite.Nil(response)
	suite.True(apperrors.IsDelivery(err))
}

// TestSendOTPDeliveryFailureKeepsPriorRecord tests that a failed re-send leaves the record untouched
func (suite *SignupServiceTestSuite) TestSendOTPDeliveryFailureKeepsPriorRecord() {
	suite.expectNoConflicts()
	record := suite.existingRecord(suite.now.Add(-time.Second), 2)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(apperrors.ErrMailConfigMissing)
	suite.mockOtpRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.signupService.SendOTP(suite.ctx, acmeSignup())

	suite.True(apperrors.IsConfiguration(err))
	suite.Equal("111111", record.Code)
	suite.Equal(2, record.ResendCount)
}

// TestSendOTPConcurrentCreate tests that losing the unique-index race reports alreadySent
func (suite *SignupServiceTestSuite) TestSendOTPConcurrentCreate() {
	suite.expectNoConflicts()
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockOtpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	response, err := suite.signupService.SendOTP(suite.ctx, acmeSignup())

	suite.Require().NoError(err)
	suite.True(response.AlreadySent)
}

// TestResendOTP tests a resend within budget
func (suite *SignupServiceTestSuite) TestResendOTP() {
	record := suite.existingRecord(suite.now.Add(time.Minute), 1)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockOtpRepo.EXPECT().Update(gomock.Any(), record).Return(nil)

	response, err := suite.signupService.ResendOTP(suite.ctx, "Jo@Acme.com")

	suite.Require().NoError(err)
	suite.True(response.Success)
	suite.Equal(2, response.ResendCount)
	suite.Equal(suite.now.Add(3*time.Minute), response.ExpiresAt)
	suite.Equal("482913", record.Code)
}

// TestResendOTPNotFound tests resending without a signup attempt
func (suite *SignupServiceTestSuite) TestResendOTPNotFound() {
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.signupService.ResendOTP(suite.ctx, "jo@acme.com")

	suite.Nil(response)
	suite.True(apperrors.IsNotFound(err))
}

// TestResendOTPLimitReached tests that the spent budget deletes the record without sending
func (suite *SignupServiceTestSuite) TestResendOTPLimitReached() {
	record := suite.existingRecord(suite.now.Add(time.Minute), 3)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)
	suite.mockOtpRepo.EXPECT().DeleteByEmail(gomock.Any(), "jo@acme.com").Return(int64(1), nil)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Times(0)

	response, err := suite.signupService.ResendOTP(suite.ctx, "jo@acme.com")

	suite.Nil(response)
	suite.True(apperrors.IsLimitExceeded(err))
}

// TestResendOTPDeliveryFailure tests that a failed resend does not bump the counter
func (suite *SignupServiceTestSuite) TestResendOTPDeliveryFailure() {
	record := suite.existingRecord(suite.now.Add(time.Minute), 1)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).
		Return(apperrors.NewDeliveryError("failed to send email", errors.New("timeout")))

	_, err := suite.signupService.ResendOTP(suite.ctx, "jo@acme.com")

	suite.True(apperrors.IsDelivery(err))
	suite.Equal(1, record.ResendCount)
}

// TestResendOTPMissingEmail tests the empty email guard
func (suite *SignupServiceTestSuite) TestResendOTPMissingEmail() {
	_, err := suite.signupService.ResendOTP(suite.ctx, "   ")
	suite.True(apperrors.IsValidation(err))
}

// TestResendBudget tests three codes per attempt: the initial send plus two resends
func (suite *SignupServiceTestSuite) TestResendBudget() {
	record := suite.existingRecord(suite.now.Add(3*time.Minute), 1)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil).Times(3)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	suite.mockOtpRepo.EXPECT().Update(gomock.Any(), record).Return(nil).Times(2)
	suite.mockOtpRepo.EXPECT().DeleteByEmail(gomock.Any(), "jo@acme.com").Return(int64(1), nil)

	first, err := suite.signupService.ResendOTP(suite.ctx, "jo@acme.com")
	suite.Require().NoError(err)
	suite.Equal(2, first.ResendCount)

	suite.now = suite.now.Add(time.Minute)
	second, err := suite.signupService.ResendOTP(suite.ctx, "jo@acme.com")
	suite.Require().NoError(err)
	suite.Equal(3, second.ResendCount)

	_, err = suite.signupService.ResendOTP(suite.ctx, "jo@acme.com")
	suite.ErrorIs(err, apperrors.ErrResendLimitReached)
}

// TestVerifyOTP tests the happy path creating the tenant and a session token
func (suite *SignupServiceTestSuite) TestVerifyOTP() {
	record := suite.existingRecord(suite.now.Add(time.Minute), 1)
	record.Code = "482913"
	userID, orgID := uuid.New(), uuid.New()

	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)
	suite.mockTenantRepo.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params repository.CreateTenantParams) (*repository.TenantResult, error) {
			suite.Equal("jo@acme.com", params.Email)
			suite.Equal("482913", params.Code)
			suite.Equal(suite.now, params.Now)
			suite.Equal("$2a$04$stored", params.Signup.PasswordHash)
			suite.Equal("Acme", params.Signup.OrganizationName)
			return &repository.TenantResult{
				User:         &models.User{BaseModel: models.BaseModel{ID: userID}, Email: "jo@acme.com"},
				Organization: &models.Organization{BaseModel: models.BaseModel{ID: orgID}},
				Member:       &models.OrganizationMember{},
			}, nil
		})
	suite.mockTokens.EXPECT().Issue(userID, "jo@acme.com").Return("session-token", nil)

	response, err := suite.signupService.VerifyOTP(suite.ctx, &service.VerifyOTPRequest{Email: "jo@acme.com", Otp: " 482913 "})

	suite.Require().NoError(err)
	suite.True(response.Success)
	suite.Equal(userID, response.UserID)
	suite.Equal(orgID, response.OrganizationID)
	suite.Equal("session-token", response.Token)
}

// TestVerifyOTPWrongCode tests that a mismatch keeps the record and creates nothing
func (suite *SignupServiceTestSuite) TestVerifyOTPWrongCode() {
	record := suite.existingRecord(suite.now.Add(time.Minute), 1)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)
	suite.mockTenantRepo.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Times(0)

	response, err := suite.signupService.VerifyOTP(suite.ctx, &service.VerifyOTPRequest{Email: "jo@acme.com", Otp: "000000"})

	suite.Nil(response)
	suite.True(apperrors.IsInvalidCode(err))
}

// TestVerifyOTPExpired tests that an expired code is rejected and the record is kept
func (suite *SignupServiceTestSuite) TestVerifyOTPExpired() {
	record := suite.existingRecord(suite.now, 1)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)
	suite.mockOtpRepo.EXPECT().DeleteByEmail(gomock.Any(), gomock.Any()).Times(0)
	suite.mockTenantRepo.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.signupService.VerifyOTP(suite.ctx, &service.VerifyOTPRequest{Email: "jo@acme.com", Otp: "111111"})

	suite.True(apperrors.IsExpired(err))
}

// TestVerifyOTPNotFound tests verifying without a signup attempt
func (suite *SignupServiceTestSuite) TestVerifyOTPNotFound() {
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.signupService.VerifyOTP(suite.ctx, &service.VerifyOTPRequest{Email: "jo@acme.com", Otp: "482913"})

	suite.True(apperrors.IsNotFound(err))
}

// TestVerifyOTPConsumedConcurrently tests losing the race to another verification
func (suite *SignupServiceTestSuite) TestVerifyOTPConsumedConcurrently() {
	record := suite.existingRecord(suite.now.Add(time.Minute), 1)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)
	suite.mockTenantRepo.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrOtpNotFound)
	suite.mockTokens.EXPECT().Issue(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.signupService.VerifyOTP(suite.ctx, &service.VerifyOTPRequest{Email: "jo@acme.com", Otp: "111111"})

	suite.ErrorIs(err, apperrors.ErrOtpNotFound)
}

// TestVerifyOTPTenantConflict tests a unique violation surfacing from the transaction
func (suite *SignupServiceTestSuite) TestVerifyOTPTenantConflict() {
	record := suite.existingRecord(suite.now.Add(time.Minute), 1)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)
	suite.mockTenantRepo.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrOrganizationExists)

	_, err := suite.signupService.VerifyOTP(suite.ctx, &service.VerifyOTPRequest{Email: "jo@acme.com", Otp: "111111"})

	suite.True(apperrors.IsAlreadyExists(err))
}

// TestVerifyOTPTokenFailureStillSucceeds tests that a committed tenant is reported even without a token
func (suite *SignupServiceTestSuite) TestVerifyOTPTokenFailureStillSucceeds() {
	record := suite.existingRecord(suite.now.Add(time.Minute), 1)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)
	suite.mockTenantRepo.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(&repository.TenantResult{
		User:         &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "jo@acme.com"},
		Organization: &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}},
		Member:       &models.OrganizationMember{},
	}, nil)
	suite.mockTokens.EXPECT().Issue(gomock.Any(), gomock.Any()).Return("", errors.New("signing failed"))

	response, err := suite.signupService.VerifyOTP(suite.ctx, &service.VerifyOTPRequest{Email: "jo@acme.com", Otp: "111111"})

	suite.Require().NoError(err)
	suite.True(response.Success)
	suite.Empty(response.Token)
}

// TestAcmeSignupScenario walks a signup from submission to verification two minutes later
func (suite *SignupServiceTestSuite) TestAcmeSignupScenario() {
	var stored *models.OtpRecord

	suite.expectNoConflicts()
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSender.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockOtpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.OtpRecord) error {
			stored = record
			return nil
		})

	sent, err := suite.signupService.SendOTP(suite.ctx, acmeSignup())
	suite.Require().NoError(err)
	suite.True(sent.Success)

	suite.now = suite.now.Add(2 * time.Minute)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").
		DoAndReturn(func(context.Context, string) (*models.OtpRecord, error) { return stored, nil })
	suite.mockTenantRepo.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params repository.CreateTenantParams) (*repository.TenantResult, error) {
			suite.NoError(suite.hasher.Compare(params.Signup.PasswordHash, "secret1"))
			return &repository.TenantResult{
				User:         &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: params.Signup.Email},
				Organization: &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: params.Signup.OrganizationName},
				Member:       &models.OrganizationMember{Role: models.MemberRoleAdmin},
			}, nil
		})
	suite.mockTokens.EXPECT().Issue(gomock.Any(), "jo@acme.com").Return("session-token", nil)

	verified, err := suite.signupService.VerifyOTP(suite.ctx, &service.VerifyOTPRequest{Email: "jo@acme.com", Otp: "482913"})
	suite.Require().NoError(err)
	suite.True(verified.Success)
}

// TestGetOTPExpiration tests reporting the active code's expiry
func (suite *SignupServiceTestSuite) TestGetOTPExpiration() {
	record := suite.existingRecord(suite.now.Add(time.Minute), 2)
	suite.mockOtpRepo.EXPECT().GetLatestByEmail(gomock.Any(), "jo@acme.com").Return(record, nil)

	response, err := suite.signupService.GetOTPExpiration(suite.ctx, "jo@acme.com")

	suite.Require().NoError(err)
	suite.Equal(record.ExpiresAt, response.ExpiresAt)
	suite.Equal(2, response.ResendCount)

	_, err = suite.signupService.GetOTPExpiration(suite.ctx, "")
	suite.True(apperrors.IsValidation(err))
}

// TestDeleteExpiredOTP tests the conditional delete
func (suite *SignupServiceTestSuite) TestDeleteExpiredOTP() {
	suite.mockOtpRepo.EXPECT().DeleteExpiredByEmail(gomock.Any(), "jo@acme.com", suite.now).Return(int64(1), nil)

	deleted, err := suite.signupService.DeleteExpiredOTP(suite.ctx, "jo@acme.com")

	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)

	_, err = suite.signupService.DeleteExpiredOTP(suite.ctx, "")
	suite.True(apperrors.IsValidation(err))
}

// TestSignupServiceTestSuite runs the test suite
func TestSignupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SignupServiceTestSuite))
}
