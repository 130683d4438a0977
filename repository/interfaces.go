package repository

import (
	"context"

	"orgsub-backend/models"
)

// OrganizationRepositoryInterface defines the contract for the organization registry
type OrganizationRepositoryInterface interface {
	CreateOrganization(ctx context.Context, organization *models.Organization) (*models.Organization, error)
	GetOrganizationByCode(ctx context.Context, orgCode string) (*models.Organization, error)
	ListOrganizations(ctx context.Context) ([]*models.Organization, error)
	EnableOrganization(ctx context.Context, orgCode string) (*models.Organization, error)
	ExtendSubscription(ctx context.Context, orgCode string) (*models.Organization, error)
}

// RequestRepositoryInterface defines the contract for the request ledger
type RequestRepositoryInterface interface {
	CreateRequest(ctx context.Context, request *models.SubscriptionRequest) (*models.SubscriptionRequest, error)
	ListRequests(ctx context.Context, status models.RequestStatus) ([]*models.SubscriptionRequest, error)
	GetRequest(ctx context.Context, id string) (*models.SubscriptionRequest, error)
	ApproveRequest(ctx context.Context, id string) (*models.SubscriptionRequest, error)
	RejectRequest(ctx context.Context, id string) (*models.SubscriptionRequest, error)
}

// DatasetRepositoryInterface defines the contract for bulk dataset access
type DatasetRepositoryInterface interface {
	ExportDataset(ctx context.Context) (*models.Dataset, error)
	ImportDataset(ctx context.Context, dataset *models.Dataset) error
}
