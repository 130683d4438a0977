package main

import (
	"context"
	"log"

	"orgsub-backend/controller"
	"orgsub-backend/dal"
	"orgsub-backend/models"
	"orgsub-backend/utils"
	"orgsub-backend/utils/logger"
	"orgsub-backend/worker"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	Init()

	ctx := context.Background()
	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	appLogger.Infof("%s %s starting (storage driver: %s)", config.AppName, config.AppVersion, config.StorageDriver)

	// One store shared by the HTTP layer and the sweep worker, so both go
	// through the same revision check.
	store, err := dal.NewDatasetStore(config, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize dataset store: %v", err)
	}

	r := gin.New()
	c := controller.NewController(ctx, config, appLogger, store)

	// Start server (this is blocking)
	go func() {
		if err := c.RegisterRoutes(ctx, config, r, config.BasePath); err != nil {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	sweeper, err := worker.NewService(ctx, config, appLogger, store)
	if err != nil {
		log.Fatalf("Failed to create expiry sweep worker: %v", err)
	}

	if err := sweeper.StartInBackground(); err != nil {
		log.Fatalf("Failed to start expiry sweep worker: %v", err)
	}

	// Keep main goroutine alive
	select {}
}
