package repository

import (
	"orgsub-backend/dal"
	"orgsub-backend/models"
	"orgsub-backend/utils/logger"
)

type Repository struct {
	Organization *OrganizationRepository
	Request      *RequestRepository
	Dataset      *DatasetRepository
}

func NewRepository(store dal.DatasetStoreInterface, cfg *models.Config, log logger.Logger) *Repository {
	return &Repository{
		Organization: NewOrganizationRepository(store, cfg, log),
		Request:      NewRequestRepository(store, cfg, log),
		Dataset:      NewDatasetRepository(store, cfg, log),
	}
}
