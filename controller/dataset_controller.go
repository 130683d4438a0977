package controller

import (
	"context"
	"io"
	"net/http"

	"orgsub-backend/models"
	"orgsub-backend/services"
	"orgsub-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type DatasetController struct {
	ctx            context.Context
	datasetService services.DatasetServiceInterface
	logger         logger.Logger
}

func NewDatasetController(ctx context.Context, datasetService services.DatasetServiceInterface, logger logger.Logger) *DatasetController {
	return &DatasetController{
		ctx:            ctx,
		datasetService: datasetService,
		logger:         logger,
	}
}

// ExportDataset handles GET /api/v1/dataset/export. The response body is
// the full dataset document, suitable for re-import as-is.
func (h *DatasetController) ExportDataset(c *gin.Context) {
	dataset, err := h.datasetService.ExportDataset(h.ctx)
	if err != nil {
		h.logger.Error("Failed to export dataset", err)
		respondError(c, err, "Failed to export dataset")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="dataset.json"`)
	c.JSON(http.StatusOK, dataset)
}

// ImportDataset handles POST /api/v1/dataset/import
func (h *DatasetController) ImportDataset(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Failed to read request body",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: err.Error(),
			},
		})
		return
	}

	if err := h.datasetService.ImportDataset(h.ctx, raw); err != nil {
		h.logger.Error("Failed to import dataset", err)
		respondError(c, err, "Failed to import dataset")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Dataset imported successfully",
	})
}
