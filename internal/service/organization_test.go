package service_test

import (
	"context"
	"testing"
	"time"

	"quickdesk-backend/internal/auth"
	"quickdesk-backend/internal/database/models"
	apperrors "quickdesk-backend/internal/errors"
	"quickdesk-backend/internal/mocks"
	"quickdesk-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	mockMemberRepo      *mocks.MockMemberRepositoryInterface
	organizationService *service.OrganizationService
	identity            auth.Identity
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.organizationService = service.NewOrganizationService(suite.mockOrgRepo, suite.mockMemberRepo)
	suite.identity = auth.Identity{UserID: uuid.New(), Email: "jo@acme.com"}
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetCurrent tests returning the preloaded organization with membership details
func (suite *OrganizationServiceTestSuite) TestGetCurrent() {
	org := &models.Organization{
		BaseModel:        models.BaseModel{ID: uuid.New(), CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		Name:             "Acme",
		Domain:           "acme.com",
		OwnerID:          suite.identity.UserID,
		DeadlineSettings: models.DefaultDeadlineSettings(),
	}
	suite.mockMemberRepo.EXPECT().GetByUserID(gomock.Any(), suite.identity.UserID).Return(&models.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         suite.identity.UserID,
		Role:           models.MemberRoleAdmin,
		Status:         models.MembershipStatusNotVerified,
		Organization:   org,
	}, nil)

	response, err := suite.organizationService.GetCurrent(context.Background(), suite.identity)

	suite.Require().NoError(err)
	suite.Equal(org.ID, response.ID)
	suite.Equal("Acme", response.Name)
	suite.Equal("2026-03-01T12:00:00Z", response.CreatedAt)
	suite.Equal(1, response.DeadlineSettings[models.PriorityUrgent])
	suite.Equal(models.MemberRoleAdmin, response.Membership.Role)
	suite.Equal(models.MembershipStatusNotVerified, response.Membership.Status)
	suite.False(response.Membership.IsClient)
}

// TestGetCurrentLoadsOrganization tests the fallback when the organization is not preloaded
func (suite *OrganizationServiceTestSuite) TestGetCurrentLoadsOrganization() {
	orgID := uuid.New()
	suite.mockMemberRepo.EXPECT().GetByUserID(gomock.Any(), suite.identity.UserID).Return(&models.OrganizationMember{
		OrganizationID: orgID,
		Role:           models.MemberRoleAdmin,
	}, nil)
	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), orgID).Return(&models.Organization{
		BaseModel: models.BaseModel{ID: orgID},
		Name:      "Acme",
	}, nil)

	response, err := suite.organizationService.GetCurrent(context.Background(), suite.identity)

	suite.Require().NoError(err)
	suite.Equal(orgID, response.ID)
}

// TestGetCurrentNoMembership tests a user without an organization
func (suite *OrganizationServiceTestSuite) TestGetCurrentNoMembership() {
	suite.mockMemberRepo.EXPECT().GetByUserID(gomock.Any(), suite.identity.UserID).Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.organizationService.GetCurrent(context.Background(), suite.identity)

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrMembershipNotFound)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
