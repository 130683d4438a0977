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

// MockDatasetRepository implements the DatasetRepositoryInterface for testing
type MockDatasetRepository struct {
	mock.Mock
}

func (m *MockDatasetRepository) ExportDataset(ctx context.Context) (*models.Dataset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dataset), args.Error(1)
}

func (m *MockDatasetRepository) ImportDataset(ctx context.Context, dataset *models.Dataset) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}

type DatasetServiceTestSuite struct {
	suite.Suite
	service  *DatasetService
	mockRepo *MockDatasetRepository
	ctx      context.Context
}

func (suite *DatasetServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = &MockDatasetRepository{}
	suite.service = NewDatasetService(suite.mockRepo, logger.NewLogger("error", "text"))
}

func TestDatasetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DatasetServiceTestSuite))
}

func (suite *DatasetServiceTestSuite) TestExportDataset() {
	ds := models.NewDataset()
	suite.mockRepo.On("ExportDataset", suite.ctx).Return(ds, nil)

	result, err := suite.service.ExportDataset(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), ds, result)
}

func (suite *DatasetServiceTestSuite) TestImportDataset() {
	raw := []byte(`{
		"organizations": [
			{"orgCode": "ACME", "orgName": "Acme Corp", "owner": "Jordan", "phone": "+15550001111",
			 "subscription": {"active": false, "startDate": null, "endDate": null, "tier": null},
			 "continueEnabled": false, "createdAt": "2024-05-01T12:00:00Z"}
		],
		"requests": []
	}`)

	suite.mockRepo.On("ImportDataset", suite.ctx, mock.MatchedBy(func(ds *models.Dataset) bool {
		return len(ds.Organizations) == 1 &&
			ds.Organizations[0].OrgCode == "ACME" &&
			len(ds.Requests) == 0
	})).Return(nil)

	err := suite.service.ImportDataset(suite.ctx, raw)

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// Explicit nulls for the collections are accepted and normalized to empty
// slices before the repository sees them.
func (suite *DatasetServiceTestSuite) TestImportDatasetNullCollections() {
	raw := []byte(`{"organizations": null, "requests": null}`)

	suite.mockRepo.On("ImportDataset", suite.ctx, mock.MatchedBy(func(ds *models.Dataset) bool {
		return ds.Organizations != nil && len(ds.Organizations) == 0 &&
			ds.Requests != nil && len(ds.Requests) == 0
	})).Return(nil)

	err := suite.service.ImportDataset(suite.ctx, raw)

	assert.NoError(suite.T(), err)
}

func (suite *DatasetServiceTestSuite) TestImportDatasetRejectsInvalidJSON() {
	err := suite.service.ImportDataset(suite.ctx, []byte(`{"organizations": [`))

	assert.Error(suite.T(), err)
	assert.True(suite.T(), models.IsType(err, models.ErrorTypeValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "ImportDataset", mock.Anything, mock.Anything)
}

func (suite *DatasetServiceTestSuite) TestImportDatasetMissingKeys() {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "missing organizations", raw: `{"requests": []}`},
		{name: "missing requests", raw: `{"organizations": []}`},
		{name: "empty object", raw: `{}`},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := suite.service.ImportDataset(suite.ctx, []byte(tc.raw))

			assert.Error(suite.T(), err)
			assert.True(suite.T(), models.IsType(err, models.ErrorTypeValidation))
		})
	}

	suite.mockRepo.AssertNotCalled(suite.T(), "ImportDataset", mock.Anything, mock.Anything)
}

func (suite *DatasetServiceTestSuite) TestImportDatasetRepositoryError() {
	suite.mockRepo.On("ImportDataset", suite.ctx, mock.Anything).Return(errors.New("write conflict"))

	err := suite.service.ImportDataset(suite.ctx, []byte(`{"organizations": [], "requests": []}`))

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "write conflict")
}
