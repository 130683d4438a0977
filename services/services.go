package services

import (
	"orgsub-backend/repository"
	"orgsub-backend/utils/logger"
)

// Service bundles all services with their dependencies injected
type Service struct {
	Organization OrganizationServiceInterface
	Request      RequestServiceInterface
	Dataset      DatasetServiceInterface
}

// NewService creates a new service container
func NewService(repo *repository.Repository, logger logger.Logger) *Service {
	return &Service{
		Organization: NewOrganizationService(repo.Organization, logger),
		Request:      NewRequestService(repo.Request, logger),
		Dataset:      NewDatasetService(repo.Dataset, logger),
	}
}
