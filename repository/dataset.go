package repository

import (
	"context"

	"orgsub-backend/dal"
	"orgsub-backend/models"
	"orgsub-backend/utils/logger"
)

// DatasetRepository implements DatasetRepositoryInterface for bulk
// export/import of the whole dataset.
type DatasetRepository struct {
	store  dal.DatasetStoreInterface
	config *models.Config
	logger logger.Logger
}

func NewDatasetRepository(store dal.DatasetStoreInterface, cfg *models.Config, log logger.Logger) *DatasetRepository {
	return &DatasetRepository{
		store:  store,
		config: cfg,
		logger: log,
	}
}

func (r *DatasetRepository) ExportDataset(ctx context.Context) (*models.Dataset, error) {
	return r.store.Load(ctx)
}

// ImportDataset replaces the live dataset with the given one. Replacement
// is total, never merged. The incoming dataset takes over the current
// revision so the save still fails on a concurrent write.
func (r *DatasetRepository) ImportDataset(ctx context.Context, dataset *models.Dataset) error {
	current, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	dataset.Revision = current.Revision
	if err := r.store.Save(ctx, dataset); err != nil {
		r.logger.Errorf("Failed to import dataset: %v", err)
		return err
	}

	r.logger.Infof("Dataset imported: %d organizations, %d requests", len(dataset.Organizations), len(dataset.Requests))
	return nil
}
