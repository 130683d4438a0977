package services

import (
	"context"
	"regexp"
	"strings"

	"orgsub-backend/models"
	"orgsub-backend/repository"
	"orgsub-backend/utils/logger"
)

type OrganizationService struct {
	organizationRepo repository.OrganizationRepositoryInterface
	logger           logger.Logger
}

func NewOrganizationService(organizationRepo repository.OrganizationRepositoryInterface, logger logger.Logger) *OrganizationService {
	return &OrganizationService{
		organizationRepo: organizationRepo,
		logger:           logger,
	}
}

func (s *OrganizationService) CreateOrganization(ctx context.Context, organization *models.Organization) (*models.Organization, error) {
	if err := s.validateCreateOrganization(organization); err != nil {
		return nil, err
	}

	return s.organizationRepo.CreateOrganization(ctx, organization)
}

func (s *OrganizationService) validateCreateOrganization(organization *models.Organization) error {
	if organization == nil {
		return models.NewValidationError("organization is required")
	}

	if strings.TrimSpace(organization.OrgCode) == "" {
		return models.NewValidationError("orgCode is required")
	}

	if strings.TrimSpace(organization.OrgName) == "" {
		return models.NewValidationError("orgName is required")
	}

	if strings.TrimSpace(organization.Owner) == "" {
		return models.NewValidationError("owner is required")
	}

	if strings.TrimSpace(organization.Phone) == "" {
		return models.NewValidationError("phone is required")
	}

	if strings.TrimSpace(organization.Email) != "" {
		if !isValidEmail(organization.Email) {
			return models.NewValidationError("invalid email format")
		}
	}

	return nil
}

func isValidEmail(email string) bool {
	// Simple regex for email validation
	const emailRegex = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	re := regexp.MustCompile(emailRegex)
	return re.MatchString(email)
}

func (s *OrganizationService) GetOrganizations(ctx context.Context) ([]*models.Organization, error) {
	return s.organizationRepo.ListOrganizations(ctx)
}

func (s *OrganizationService) GetOrganizationByCode(ctx context.Context, orgCode string) (*models.Organization, error) {
	if strings.TrimSpace(orgCode) == "" {
		return nil, models.NewValidationError("orgCode is required")
	}
	return s.organizationRepo.GetOrganizationByCode(ctx, orgCode)
}

func (s *OrganizationService) EnableOrganization(ctx context.Context, orgCode string) (*models.Organization, error) {
	if strings.TrimSpace(orgCode) == "" {
		return nil, models.NewValidationError("orgCode is required")
	}
	return s.organizationRepo.EnableOrganization(ctx, orgCode)
}

func (s *OrganizationService) ExtendSubscription(ctx context.Context, orgCode string) (*models.Organization, error) {
	if strings.TrimSpace(orgCode) == "" {
		return nil, models.NewValidationError("orgCode is required")
	}
	return s.organizationRepo.ExtendSubscription(ctx, orgCode)
}
