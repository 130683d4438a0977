package dal

import (
	"fmt"

	"orgsub-backend/models"
	"orgsub-backend/utils/logger"
)

// NewDatasetStore creates the dataset store for the configured driver.
func NewDatasetStore(cfg *models.Config, log logger.Logger) (DatasetStoreInterface, error) {
	switch cfg.StorageDriver {
	case "file":
		return NewFileStore(cfg, log), nil
	case "dynamodb":
		return NewDynamoStore(cfg, log)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}
}
