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

type RequestController struct {
	ctx            context.Context
	requestService services.RequestServiceInterface
	logger         logger.Logger
	validator      *validator.Validate
}

func NewRequestController(ctx context.Context, requestService services.RequestServiceInterface, logger logger.Logger) *RequestController {
	return &RequestController{
		ctx:            ctx,
		requestService: requestService,
		logger:         logger,
		validator:      validator.New(),
	}
}

// SubmitRequest handles POST /api/v1/requests. This is the one public
// write endpoint: anyone can submit a subscription request.
func (h *RequestController) SubmitRequest(c *gin.Context) {
	var req models.SubmitRequestInput
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

	request, err := h.requestService.SubmitRequest(h.ctx, &req)
	if err != nil {
		h.logger.Error("Failed to submit request", err)
		respondError(c, err, "Failed to submit request")
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Request submitted successfully",
		Data:    request,
	})
}

// GetRequests handles GET /api/v1/requests?status=
func (h *RequestController) GetRequests(c *gin.Context) {
	status := c.Query("status")

	requests, err := h.requestService.GetRequests(h.ctx, status)
	if err != nil {
		h.logger.Error("Failed to get requests", err)
		respondError(c, err, "Failed to get requests")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Requests retrieved successfully",
		Data: map[string]interface{}{
			"requests": requests,
			"total":    len(requests),
		},
	})
}

// ApproveRequest handles POST /api/v1/requests/:id/approve
func (h *RequestController) ApproveRequest(c *gin.Context) {
	id := c.Param("id")

	request, err := h.requestService.ApproveRequest(h.ctx, id)
	if err != nil {
		h.logger.Error("Failed to approve request", err)
		respondError(c, err, "Failed to approve request")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Request approved successfully",
		Data:    request,
	})
}

// RejectRequest handles POST /api/v1/requests/:id/reject
func (h *RequestController) RejectRequest(c *gin.Context) {
	id := c.Param("id")

	request, err := h.requestService.RejectRequest(h.ctx, id)
	if err != nil {
		h.logger.Error("Failed to reject request", err)
		respondError(c, err, "Failed to reject request")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Request rejected successfully",
		Data:    request,
	})
}
