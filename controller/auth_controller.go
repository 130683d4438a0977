package controller

import (
	"context"
	"net/http"

	"orgsub-backend/middelware"
	"orgsub-backend/models"
	"orgsub-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthController struct {
	ctx        context.Context
	jwtManager *middelware.JWTManager
	config     *models.Config
	logger     logger.Logger
	validator  *validator.Validate
}

func NewAuthController(ctx context.Context, jwtManager *middelware.JWTManager, cfg *models.Config, log logger.Logger) *AuthController {
	return &AuthController{
		ctx:        ctx,
		jwtManager: jwtManager,
		config:     cfg,
		logger:     log,
		validator:  validator.New(),
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
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

	token, err := h.jwtManager.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Login failed",
			Error: &models.APIError{
				Type:    "AuthenticationError",
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Login successful",
		Data: models.LoginResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: int64(h.config.JWTExpiresIn.Seconds()),
		},
	})
}
