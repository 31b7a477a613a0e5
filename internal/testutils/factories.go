package testutils

import (
	"encoding/json"
	"time"

	"quickdesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Jo Doe",
		// Unique per call to avoid conflicts on the email index
		Email:        "jo." + id.String()[:8] + "@acme.com",
		PasswordHash: "$2a$04$abcdefghijklmnopqrstuu5TQ2Mb0NB7U1NvKk4yP5rKCmSxTgAXW",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization owned by ownerID
func (f *OrganizationFactory) Create(ownerID uuid.UUID) *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "Acme",
		Domain:           "acme.com",
		OwnerID:          ownerID,
		DeadlineSettings: models.DefaultDeadlineSettings(),
	}
}

// WithNameAndDomain sets a custom name and domain for the organization
func (f *OrganizationFactory) WithNameAndDomain(ownerID uuid.UUID, name, domain string) *models.Organization {
	org := f.Create(ownerID)
	org.Name = name
	org.Domain = domain
	return org
}

// MemberFactory provides methods to create test OrganizationMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates an admin membership linking orgID and userID
func (f *MemberFactory) Create(orgID, userID uuid.UUID) *models.OrganizationMember {
	return &models.OrganizationMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		UserID:         userID,
		Role:           models.MemberRoleAdmin,
		Status:         models.MembershipStatusNotVerified,
	}
}

// PendingSignupFactory provides methods to create test PendingSignup data
type PendingSignupFactory struct{}

// NewPendingSignupFactory creates a new PendingSignupFactory
func NewPendingSignupFactory() *PendingSignupFactory {
	return &PendingSignupFactory{}
}

// Create creates the Acme signup used across tests
func (f *PendingSignupFactory) Create() models.PendingSignup {
	return models.PendingSignup{
		OrganizationName: "Acme",
		Domain:           "acme.com",
		Name:             "Jo",
		Email:            "jo@acme.com",
		PasswordHash:     "$2a$04$abcdefghijklmnopqrstuu5TQ2Mb0NB7U1NvKk4yP5rKCmSxTgAXW",
	}
}

// OtpFactory provides methods to create test OtpRecord data
type OtpFactory struct{}

// NewOtpFactory creates a new OtpFactory
func NewOtpFactory() *OtpFactory {
	return &OtpFactory{}
}

// Create creates an unexpired OTP record carrying signup
func (f *OtpFactory) Create(signup models.PendingSignup) *models.OtpRecord {
	payload, _ := json.Marshal(signup)
	return &models.OtpRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:          signup.Email,
		Code:           "482913",
		ExpiresAt:      time.Now().Add(3 * time.Minute),
		ResendCount:    1,
		PendingPayload: datatypes.JSON(payload),
	}
}

// Expired creates an OTP record that expired a minute ago
func (f *OtpFactory) Expired(signup models.PendingSignup) *models.OtpRecord {
	record := f.Create(signup)
	record.ExpiresAt = time.Now().Add(-time.Minute)
	return record
}

// PasswordResetFactory provides methods to create test PasswordResetOtp data
type PasswordResetFactory struct{}

// NewPasswordResetFactory creates a new PasswordResetFactory
func NewPasswordResetFactory() *PasswordResetFactory {
	return &PasswordResetFactory{}
}

// Create creates an unexpired reset record for email
func (f *PasswordResetFactory) Create(email string) *models.PasswordResetOtp {
	return &models.PasswordResetOtp{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     email,
		Code:      "135790",
		ExpiresAt: time.Now().Add(3 * time.Minute),
		SendCount: 1,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User          *UserFactory
	Organization  *OrganizationFactory
	Member        *MemberFactory
	PendingSignup *PendingSignupFactory
	Otp           *OtpFactory
	PasswordReset *PasswordResetFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:          NewUserFactory(),
		Organization:  NewOrganizationFactory(),
		Member:        NewMemberFactory(),
		PendingSignup: NewPendingSignupFactory(),
		Otp:           NewOtpFactory(),
		PasswordReset: NewPasswordResetFactory(),
	}
}

// CreateTenant builds a user, an organization it owns and the admin membership
func (fs *FactorySet) CreateTenant() (*models.User, *models.Organization, *models.OrganizationMember) {
	user := fs.User.Create()
	org := fs.Organization.Create(user.ID)
	member := fs.Member.Create(org.ID, user.ID)
	return user, org, member
}
