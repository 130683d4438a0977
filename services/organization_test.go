package services

import (
	"context"
	"errors"
	"testing"

	"orgsub-backend/models"
	"orgsub-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockOrganizationRepository implements the OrganizationRepositoryInterface for testing
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) CreateOrganization(ctx context.Context, organization *models.Organization) (*models.Organization, error) {
	args := m.Called(ctx, organization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetOrganizationByCode(ctx context.Context, orgCode string) (*models.Organization, error) {
	args := m.Called(ctx, orgCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) EnableOrganization(ctx context.Context, orgCode string) (*models.Organization, error) {
	args := m.Called(ctx, orgCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) ExtendSubscription(ctx context.Context, orgCode string) (*models.Organization, error) {
	args := m.Called(ctx, orgCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

type OrganizationServiceTestSuite struct {
	suite.Suite
	service  *OrganizationService
	mockRepo *MockOrganizationRepository
	ctx      context.Context
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = &MockOrganizationRepository{}
	suite.service = NewOrganizationService(suite.mockRepo, logger.NewLogger("error", "text"))
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}

func validOrganization() *models.Organization {
	return &models.Organization{
		OrgCode: "ACME",
		OrgName: "Acme Corp",
		Owner:   "Jordan",
		Phone:   "+15550001111",
		Email:   "owner@acme.example",
	}
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	org := validOrganization()
	suite.mockRepo.On("CreateOrganization", suite.ctx, org).Return(org, nil)

	result, err := suite.service.CreateOrganization(suite.ctx, org)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ACME", result.OrgCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

// The email field is optional; an empty value skips format validation.
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationWithoutEmail() {
	org := validOrganization()
	org.Email = ""
	suite.mockRepo.On("CreateOrganization", suite.ctx, org).Return(org, nil)

	_, err := suite.service.CreateOrganization(suite.ctx, org)

	assert.NoError(suite.T(), err)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidationErrors() {
	testCases := []struct {
		name          string
		organization  *models.Organization
		expectedError string
	}{
		{
			name:          "nil organization",
			organization:  nil,
			expectedError: "organization is required",
		},
		{
			name:          "missing orgCode",
			organization:  &models.Organization{OrgName: "Acme", Owner: "J", Phone: "1"},
			expectedError: "orgCode is required",
		},
		{
			name:          "whitespace orgCode",
			organization:  &models.Organization{OrgCode: "   ", OrgName: "Acme", Owner: "J", Phone: "1"},
			expectedError: "orgCode is required",
		},
		{
			name:          "missing orgName",
			organization:  &models.Organization{OrgCode: "ACME", Owner: "J", Phone: "1"},
			expectedError: "orgName is required",
		},
		{
			name:          "missing owner",
			organization:  &models.Organization{OrgCode: "ACME", OrgName: "Acme", Phone: "1"},
			expectedError: "owner is required",
		},
		{
			name:          "missing phone",
			organization:  &models.Organization{OrgCode: "ACME", OrgName: "Acme", Owner: "J"},
			expectedError: "phone is required",
		},
		{
			name:          "invalid email",
			organization:  &models.Organization{OrgCode: "ACME", OrgName: "Acme", Owner: "J", Phone: "1", Email: "bad"},
			expectedError: "invalid email format",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			result, err := suite.service.CreateOrganization(suite.ctx, tc.organization)

			assert.Error(suite.T(), err)
			assert.Nil(suite.T(), result)
			assert.True(suite.T(), models.IsType(err, models.ErrorTypeValidation))
			assert.Contains(suite.T(), err.Error(), tc.expectedError)
		})
	}

	suite.mockRepo.AssertNotCalled(suite.T(), "CreateOrganization", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganizationRepositoryError() {
	suite.mockRepo.On("CreateOrganization", suite.ctx, mock.Anything).Return(nil, errors.New("duplicate"))

	result, err := suite.service.CreateOrganization(suite.ctx, validOrganization())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
}

func (suite *OrganizationServiceTestSuite) TestGetOrganizations() {
	expected := []*models.Organization{validOrganization()}
	suite.mockRepo.On("ListOrganizations", suite.ctx).Return(expected, nil)

	result, err := suite.service.GetOrganizations(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 1)
}

func (suite *OrganizationServiceTestSuite) TestGetOrganizationByCode() {
	suite.mockRepo.On("GetOrganizationByCode", suite.ctx, "ACME").Return(validOrganization(), nil)

	result, err := suite.service.GetOrganizationByCode(suite.ctx, "ACME")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ACME", result.OrgCode)
}

func (suite *OrganizationServiceTestSuite) TestGetOrganizationByCodeBlank() {
	result, err := suite.service.GetOrganizationByCode(suite.ctx, "  ")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
	assert.True(suite.T(), models.IsType(err, models.ErrorTypeValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "GetOrganizationByCode", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestEnableOrganization() {
	org := validOrganization()
	org.ContinueEnabled = true
	suite.mockRepo.On("EnableOrganization", suite.ctx, "ACME").Return(org, nil)

	result, err := suite.service.EnableOrganization(suite.ctx, "ACME")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.ContinueEnabled)
}

func (suite *OrganizationServiceTestSuite) TestEnableOrganizationBlankCode() {
	result, err := suite.service.EnableOrganization(suite.ctx, "")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
	assert.True(suite.T(), models.IsType(err, models.ErrorTypeValidation))
}

func (suite *OrganizationServiceTestSuite) TestExtendSubscription() {
	suite.mockRepo.On("ExtendSubscription", suite.ctx, "ACME").Return(validOrganization(), nil)

	result, err := suite.service.ExtendSubscription(suite.ctx, "ACME")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), result)
}

func (suite *OrganizationServiceTestSuite) TestExtendSubscriptionBlankCode() {
	result, err := suite.service.ExtendSubscription(suite.ctx, "")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
	assert.True(suite.T(), models.IsType(err, models.ErrorTypeValidation))
}
