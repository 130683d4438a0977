package repository

import (
	"context"
	"time"

	"orgsub-backend/dal"
	"orgsub-backend/models"
	"orgsub-backend/utils"
	"orgsub-backend/utils/logger"
)

// RequestRepository implements RequestRepositoryInterface. The ledger is
// append-only: requests transition exactly once from pending to a
// terminal state and are never removed.
type RequestRepository struct {
	store  dal.DatasetStoreInterface
	config *models.Config
	logger logger.Logger
}

func NewRequestRepository(store dal.DatasetStoreInterface, cfg *models.Config, log logger.Logger) *RequestRepository {
	return &RequestRepository{
		store:  store,
		config: cfg,
		logger: log,
	}
}

// CreateRequest appends a new pending request to the ledger. The
// referenced organization does not have to exist yet; orphaned requests
// are a valid transient state.
func (r *RequestRepository) CreateRequest(ctx context.Context, request *models.SubscriptionRequest) (*models.SubscriptionRequest, error) {
	ds, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	request.ID = utils.GenerateRequestID()
	request.Status = models.RequestStatusPending
	request.Timestamp = time.Now().UTC()
	request.ApprovedAt = nil
	request.RejectedAt = nil

	ds.Requests = append(ds.Requests, request)
	if err := r.store.Save(ctx, ds); err != nil {
		r.logger.Errorf("Failed to create request: %v", err)
		return nil, err
	}

	r.logger.Infof("Request %s created for organization %s (tier %d)", request.ID, request.OrgCode, request.SelectedTier)
	return request, nil
}

// ListRequests returns requests in insertion order (oldest first),
// optionally restricted to an exact status match.
func (r *RequestRepository) ListRequests(ctx context.Context, status models.RequestStatus) ([]*models.SubscriptionRequest, error) {
	ds, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if status == "" {
		return ds.Requests, nil
	}

	filtered := []*models.SubscriptionRequest{}
	for _, req := range ds.Requests {
		if req.Status == status {
			filtered = append(filtered, req)
		}
	}
	return filtered, nil
}

func (r *RequestRepository) GetRequest(ctx context.Context, id string) (*models.SubscriptionRequest, error) {
	ds, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	req := ds.FindRequest(id)
	if req == nil {
		return nil, models.NewNotFoundError("request not found")
	}
	return req, nil
}

// ApproveRequest transitions a pending request to approved and applies the
// resulting subscription window to the linked organization. The request
// reaches its terminal state even when the organization is missing; in
// that case the subscription mutation is skipped entirely. Both mutations
// are committed in a single save.
func (r *RequestRepository) ApproveRequest(ctx context.Context, id string) (*models.SubscriptionRequest, error) {
	ds, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	request := ds.FindRequest(id)
	if request == nil {
		return nil, models.NewNotFoundError("request not found")
	}
	if request.Status != models.RequestStatusPending {
		return nil, models.NewInvalidStateError("request is already " + string(request.Status))
	}

	now := time.Now().UTC()
	request.Status = models.RequestStatusApproved
	request.ApprovedAt = &now

	org := ds.FindOrganization(request.OrgCode)
	if org == nil {
		r.logger.Warnf("Request %s approved but organization %s not found, skipping subscription update", id, request.OrgCode)
	} else {
		// The new window always starts at the approval instant. A prior
		// active window is overwritten, not extended.
		start, end := utils.SubscriptionWindow(request.SelectedTier, now)
		tier := utils.TierLabel(request.SelectedTier)
		org.Subscription = models.Subscription{
			Active:    true,
			StartDate: &start,
			EndDate:   &end,
			Tier:      &tier,
		}
		org.ContinueEnabled = true
	}

	if err := r.store.Save(ctx, ds); err != nil {
		r.logger.Errorf("Failed to approve request %s: %v", id, err)
		return nil, err
	}

	r.logger.Infof("Request %s approved (org %s, tier %s)", id, request.OrgCode, utils.TierLabel(request.SelectedTier))
	return request, nil
}

// RejectRequest transitions a pending request to rejected.
func (r *RequestRepository) RejectRequest(ctx context.Context, id string) (*models.SubscriptionRequest, error) {
	ds, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	request := ds.FindRequest(id)
	if request == nil {
		return nil, models.NewNotFoundError("request not found")
	}
	if request.Status != models.RequestStatusPending {
		return nil, models.NewInvalidStateError("request is already " + string(request.Status))
	}

	now := time.Now().UTC()
	request.Status = models.RequestStatusRejected
	request.RejectedAt = &now

	if err := r.store.Save(ctx, ds); err != nil {
		r.logger.Errorf("Failed to reject request %s: %v", id, err)
		return nil, err
	}

	r.logger.Infof("Request %s rejected", id)
	return request, nil
}
