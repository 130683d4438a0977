package repository

import (
	"context"
	"time"

	"orgsub-backend/dal"
	"orgsub-backend/models"
	"orgsub-backend/utils"
	"orgsub-backend/utils/logger"
)

// OrganizationRepository implements OrganizationRepositoryInterface over
// the dataset store. Every operation is one load-mutate-save cycle; the
// store's revision check turns racing writers into ConflictErrors instead
// of silent lost updates.
type OrganizationRepository struct {
	store  dal.DatasetStoreInterface
	config *models.Config
	logger logger.Logger
}

func NewOrganizationRepository(store dal.DatasetStoreInterface, cfg *models.Config, log logger.Logger) *OrganizationRepository {
	return &OrganizationRepository{
		store:  store,
		config: cfg,
		logger: log,
	}
}

// CreateOrganization registers a new organization. The org code must be
// unique (case-sensitive exact match); the subscription starts inactive.
func (r *OrganizationRepository) CreateOrganization(ctx context.Context, organization *models.Organization) (*models.Organization, error) {
	r.logger.Infof("Creating organization: %s", organization.OrgCode)

	ds, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if ds.FindOrganization(organization.OrgCode) != nil {
		return nil, models.NewConflictError("organization with this code already exists")
	}

	organization.Subscription = models.Subscription{}
	organization.ContinueEnabled = false
	organization.CreatedAt = time.Now().UTC()

	ds.Organizations = append(ds.Organizations, organization)
	if err := r.store.Save(ctx, ds); err != nil {
		r.logger.Errorf("Failed to create organization: %v", err)
		return nil, err
	}

	r.logger.Infof("Organization created successfully: %s", organization.OrgCode)
	return organization, nil
}

func (r *OrganizationRepository) GetOrganizationByCode(ctx context.Context, orgCode string) (*models.Organization, error) {
	ds, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	org := ds.FindOrganization(orgCode)
	if org == nil {
		return nil, models.NewNotFoundError("organization not found")
	}
	return org, nil
}

func (r *OrganizationRepository) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	ds, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Organizations, nil
}

// EnableOrganization sets the continue gate unconditionally. Idempotent.
func (r *OrganizationRepository) EnableOrganization(ctx context.Context, orgCode string) (*models.Organization, error) {
	ds, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	org := ds.FindOrganization(orgCode)
	if org == nil {
		return nil, models.NewNotFoundError("organization not found")
	}

	org.ContinueEnabled = true
	if err := r.store.Save(ctx, ds); err != nil {
		return nil, err
	}

	r.logger.Infof("Organization %s continue-enabled", orgCode)
	return org, nil
}

// ExtendSubscription advances the end date of an active subscription by
// exactly one calendar month, clamped to the target month's last valid
// day. Distinct from approval, which grants flat 30-day multiples.
func (r *OrganizationRepository) ExtendSubscription(ctx context.Context, orgCode string) (*models.Organization, error) {
	ds, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	org := ds.FindOrganization(orgCode)
	if org == nil {
		return nil, models.NewNotFoundError("organization not found")
	}

	if !org.Subscription.Active || org.Subscription.EndDate == nil {
		return nil, models.NewInvalidStateError("organization has no active subscription to extend")
	}

	newEnd := utils.AddCalendarMonth(*org.Subscription.EndDate)
	org.Subscription.EndDate = &newEnd

	if err := r.store.Save(ctx, ds); err != nil {
		return nil, err
	}

	r.logger.Infof("Organization %s subscription extended to %s", orgCode, newEnd.Format(time.RFC3339))
	return org, nil
}
