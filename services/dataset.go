package services

import (
	"context"
	"encoding/json"

	"orgsub-backend/models"
	"orgsub-backend/repository"
	"orgsub-backend/utils/logger"

	"github.com/tidwall/gjson"
)

type DatasetService struct {
	datasetRepo repository.DatasetRepositoryInterface
	logger      logger.Logger
}

func NewDatasetService(datasetRepo repository.DatasetRepositoryInterface, logger logger.Logger) *DatasetService {
	return &DatasetService{
		datasetRepo: datasetRepo,
		logger:      logger,
	}
}

func (s *DatasetService) ExportDataset(ctx context.Context) (*models.Dataset, error) {
	return s.datasetRepo.ExportDataset(ctx)
}

// ImportDataset replaces the live dataset with the uploaded document.
// Both top-level keys must be present before anything is touched; a
// document missing either one is rejected and the live dataset is left
// unchanged.
func (s *DatasetService) ImportDataset(ctx context.Context, raw []byte) error {
	if !gjson.ValidBytes(raw) {
		return models.NewValidationError("import document is not valid JSON")
	}

	if !gjson.GetBytes(raw, "organizations").Exists() {
		return models.NewValidationError("import document is missing the organizations key")
	}
	if !gjson.GetBytes(raw, "requests").Exists() {
		return models.NewValidationError("import document is missing the requests key")
	}

	var dataset models.Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return models.NewValidationError("import document does not match the dataset layout")
	}
	if dataset.Organizations == nil {
		dataset.Organizations = []*models.Organization{}
	}
	if dataset.Requests == nil {
		dataset.Requests = []*models.SubscriptionRequest{}
	}

	return s.datasetRepo.ImportDataset(ctx, &dataset)
}
