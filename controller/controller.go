package controller

import (
	"context"
	"net/http"
	"strings"

	"orgsub-backend/dal"
	"orgsub-backend/middelware"
	"orgsub-backend/models"
	"orgsub-backend/repository"
	"orgsub-backend/services"
	"orgsub-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	Auth         *AuthController
	Organization *OrganizationController
	Request      *RequestController
	Dataset      *DatasetController

	jwtManager *middelware.JWTManager
}

func NewController(ctx context.Context, cfg *models.Config, log logger.Logger, store dal.DatasetStoreInterface) *Controller {
	repo := repository.NewRepository(store, cfg, log)
	svc := services.NewService(repo, log)
	jwtManager := middelware.NewJWTManager(cfg, log)

	return &Controller{
		Auth:         NewAuthController(ctx, jwtManager, cfg, log),
		Organization: NewOrganizationController(ctx, svc.Organization, log),
		Request:      NewRequestController(ctx, svc.Request, log),
		Dataset:      NewDatasetController(ctx, svc.Dataset, log),
		jwtManager:   jwtManager,
	}
}

// RegisterRoutes wires all endpoints and starts the HTTP server. Only the
// request submission, login, and health endpoints are public; everything
// else sits behind the bearer-token middleware.
func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string) error {
	log := logger.NewLogger(config.LogLevel, config.LogFormat)

	logging := middelware.NewLoggingMiddleware(log)
	cors := middelware.NewCORSMiddleware(config)
	r.Use(logging.Recovery(), logging.RequestLogger(), cors.CORS())

	v1 := r.Group(basePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": config.AppVersion,
			"service": config.AppName,
		})
	})

	// Public endpoints
	v1.POST("/auth/login", c.Auth.Login)
	v1.POST("/requests", c.Request.SubmitRequest)

	// Administrative endpoints
	auth := c.jwtManager.AuthMiddleware()

	v1.GET("/requests", auth, c.Request.GetRequests)
	v1.POST("/requests/:id/approve", auth, c.Request.ApproveRequest)
	v1.POST("/requests/:id/reject", auth, c.Request.RejectRequest)

	v1.POST("/organizations", auth, c.Organization.CreateOrganization)
	v1.GET("/organizations", auth, c.Organization.GetOrganizations)
	v1.GET("/organizations/:orgCode", auth, c.Organization.GetOrganization)
	v1.POST("/organizations/:orgCode/enable", auth, c.Organization.EnableOrganization)
	v1.POST("/organizations/:orgCode/extend", auth, c.Organization.ExtendSubscription)

	v1.GET("/dataset/export", auth, c.Dataset.ExportDataset)
	v1.POST("/dataset/import", auth, c.Dataset.ImportDataset)

	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}

	log.Infof("Starting server on %s:%s", config.AppHost, config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// statusForError maps the application error taxonomy to HTTP status codes.
func statusForError(err error) int {
	switch models.TypeOf(err) {
	case models.ErrorTypeValidation:
		return http.StatusBadRequest
	case models.ErrorTypeNotFound:
		return http.StatusNotFound
	case models.ErrorTypeConflict, models.ErrorTypeInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// formatValidationErrors formats validation errors into readable messages
func formatValidationErrors(err error) string {
	var errorMessages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				errorMessages = append(errorMessages, fieldError.Field()+" is required")
			case "gte":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at least "+fieldError.Param())
			case "email":
				errorMessages = append(errorMessages, fieldError.Field()+" must be a valid email address")
			default:
				errorMessages = append(errorMessages, fieldError.Field()+" is invalid")
			}
		}
	}

	if len(errorMessages) == 0 {
		return err.Error()
	}
	return strings.Join(errorMessages, "; ")
}

func respondError(c *gin.Context, err error, message string) {
	code := statusForError(err)
	c.JSON(code, models.APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Error: &models.APIError{
			Type:    string(models.TypeOf(err)),
			Details: err.Error(),
		},
	})
}
