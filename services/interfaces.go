package services

import (
	"context"

	"orgsub-backend/models"
)

// OrganizationServiceInterface defines the contract for organization service
type OrganizationServiceInterface interface {
	CreateOrganization(ctx context.Context, organization *models.Organization) (*models.Organization, error)
	GetOrganizations(ctx context.Context) ([]*models.Organization, error)
	GetOrganizationByCode(ctx context.Context, orgCode string) (*models.Organization, error)
	EnableOrganization(ctx context.Context, orgCode string) (*models.Organization, error)
	ExtendSubscription(ctx context.Context, orgCode string) (*models.Organization, error)
}

// RequestServiceInterface defines the contract for request service
type RequestServiceInterface interface {
	SubmitRequest(ctx context.Context, input *models.SubmitRequestInput) (*models.SubscriptionRequest, error)
	GetRequests(ctx context.Context, status string) ([]*models.SubscriptionRequest, error)
	ApproveRequest(ctx context.Context, id string) (*models.SubscriptionRequest, error)
	RejectRequest(ctx context.Context, id string) (*models.SubscriptionRequest, error)
}

// DatasetServiceInterface defines the contract for bulk export/import
type DatasetServiceInterface interface {
	ExportDataset(ctx context.Context) (*models.Dataset, error)
	ImportDataset(ctx context.Context, raw []byte) error
}
