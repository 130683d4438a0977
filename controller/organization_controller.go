package controller

import (
	"context"
	"net/http"

	"orgsub-backend/models"
	"orgsub-backend/services"
	"orgsub-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type OrganizationController struct {
	ctx                 context.Context
	organizationService services.OrganizationServiceInterface
	logger              logger.Logger
	validator           *validator.Validate
}

func NewOrganizationController(ctx context.Context, organizationService services.OrganizationServiceInterface, logger logger.Logger) *OrganizationController {
	return &OrganizationController{
		ctx:                 ctx,
		organizationService: organizationService,
		logger:              logger,
		validator:           validator.New(),
	}
}

// CreateOrganization handles POST /api/v1/organizations
func (h *OrganizationController) CreateOrganization(c *gin.Context) {
	var req models.Organization
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid request",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: err.Error(),
			},
		})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Error("Validation failed:", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: formatValidationErrors(err),
			},
		})
		return
	}

	organization, err := h.organizationService.CreateOrganization(h.ctx, &req)
	if err != nil {
		h.logger.Error("Failed to create organization", err)
		respondError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Organization created successfully",
		Data:    organization,
	})
}

// GetOrganizations handles GET /api/v1/organizations
func (h *OrganizationController) GetOrganizations(c *gin.Context) {
	organizations, err := h.organizationService.GetOrganizations(h.ctx)
	if err != nil {
		h.logger.Error("Failed to get organizations", err)
		respondError(c, err, "Failed to get organizations")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Organizations retrieved successfully",
		Data: map[string]interface{}{
			"organizations": organizations,
			"total":         len(organizations),
		},
	})
}

// GetOrganization handles GET /api/v1/organizations/:orgCode
func (h *OrganizationController) GetOrganization(c *gin.Context) {
	orgCode := c.Param("orgCode")

	organization, err := h.organizationService.GetOrganizationByCode(h.ctx, orgCode)
	if err != nil {
		h.logger.Error("Failed to get organization", err)
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Organization retrieved successfully",
		Data:    organization,
	})
}

// EnableOrganization handles POST /api/v1/organizations/:orgCode/enable
func (h *OrganizationController) EnableOrganization(c *gin.Context) {
	orgCode := c.Param("orgCode")

	organization, err := h.organizationService.EnableOrganization(h.ctx, orgCode)
	if err != nil {
		h.logger.Error("Failed to enable organization", err)
		respondError(c, err, "Failed to enable organization")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Organization enabled successfully",
		Data:    organization,
	})
}

// ExtendSubscription handles POST /api/v1/organizations/:orgCode/extend
func (h *OrganizationController) ExtendSubscription(c *gin.Context) {
	orgCode := c.Param("orgCode")

	organization, err := h.organizationService.ExtendSubscription(h.ctx, orgCode)
	if err != nil {
		h.logger.Error("Failed to extend subscription", err)
		respondError(c, err, "Failed to extend subscription")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Subscription extended successfully",
		Data:    organization,
	})
}
