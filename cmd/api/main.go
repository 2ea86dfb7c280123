package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hubxp/backoffice-api/internal/application/service"
	"github.com/hubxp/backoffice-api/internal/config"
	"github.com/hubxp/backoffice-api/internal/infrastructure/database"
	"github.com/hubxp/backoffice-api/internal/infrastructure/repository"
	"github.com/hubxp/backoffice-api/internal/presentation/http/handler"
	"github.com/hubxp/backoffice-api/internal/presentation/http/routes"
	"github.com/hubxp/backoffice-api/pkg/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewMongoDatabase(&cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		log.Printf("Warning: Failed to ensure indexes: %v", err)
	}

	// Initialize object storage
	objectStorage, err := storage.NewS3Storage(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, productRepo)
	uploadService := service.NewUploadService(objectStorage)

	// Initialize handlers
	handlers := &routes.Handlers{
		Product:   handler.NewProductHandler(productService),
		Category:  handler.NewCategoryHandler(categoryService),
		Order:     handler.NewOrderHandler(orderService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Upload:    handler.NewUploadHandler(uploadService, cfg.Storage.UploadMaxSize),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
