package services

import (
	"context"
	"strings"

	"orgsub-backend/models"
	"orgsub-backend/repository"
	"orgsub-backend/utils/logger"
)

type RequestService struct {
	requestRepo repository.RequestRepositoryInterface
	logger      logger.Logger
}

func NewRequestService(requestRepo repository.RequestRepositoryInterface, logger logger.Logger) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// SubmitRequest validates and appends a new pending request. The target
// organization is deliberately not checked for existence here.
func (s *RequestService) SubmitRequest(ctx context.Context, input *models.SubmitRequestInput) (*models.SubscriptionRequest, error) {
	if err := s.validateSubmitRequest(input); err != nil {
		return nil, err
	}

	request := &models.SubscriptionRequest{
		OrgCode:       input.OrgCode,
		OrgName:       input.OrgName,
		Owner:         input.Owner,
		Phone:         input.Phone,
		Email:         input.Email,
		SelectedTier:  *input.SelectedTier,
		SelectedPrice: input.SelectedPrice,
	}

	return s.requestRepo.CreateRequest(ctx, request)
}

func (s *RequestService) validateSubmitRequest(input *models.SubmitRequestInput) error {
	if input == nil {
		return models.NewValidationError("request is required")
	}

	if strings.TrimSpace(input.OrgCode) == "" {
		return models.NewValidationError("orgCode is required")
	}

	if strings.TrimSpace(input.OrgName) == "" {
		return models.NewValidationError("orgName is required")
	}

	if strings.TrimSpace(input.Owner) == "" {
		return models.NewValidationError("owner is required")
	}

	if strings.TrimSpace(input.Phone) == "" {
		return models.NewValidationError("phone is required")
	}

	if input.SelectedTier == nil {
		return models.NewValidationError("selectedTier is required")
	}

	if *input.SelectedTier < 0 {
		return models.NewValidationError("selectedTier must be zero or positive")
	}

	if input.SelectedPrice < 0 {
		return models.NewValidationError("selectedPrice must be zero or positive")
	}

	if strings.TrimSpace(input.Email) != "" {
		if !isValidEmail(input.Email) {
			return models.NewValidationError("invalid email format")
		}
	}

	return nil
}

// GetRequests lists requests, optionally filtered by an exact status.
func (s *RequestService) GetRequests(ctx context.Context, status string) ([]*models.SubscriptionRequest, error) {
	switch models.RequestStatus(status) {
	case "", models.RequestStatusPending, models.RequestStatusApproved, models.RequestStatusRejected:
	default:
		return nil, models.NewValidationError("status must be one of: pending, approved, rejected")
	}

	return s.requestRepo.ListRequests(ctx, models.RequestStatus(status))
}

func (s *RequestService) ApproveRequest(ctx context.Context, id string) (*models.SubscriptionRequest, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.NewValidationError("request id is required")
	}
	return s.requestRepo.ApproveRequest(ctx, id)
}

func (s *RequestService) RejectRequest(ctx context.Context, id string) (*models.SubscriptionRequest, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.NewValidationError("request id is required")
	}
	return s.requestRepo.RejectRequest(ctx, id)
}
