package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hubxp/backoffice-api/internal/config"
	"github.com/hubxp/backoffice-api/internal/presentation/http/handler"
	"github.com/hubxp/backoffice-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Order     *handler.OrderHandler
	Dashboard *handler.DashboardHandler
	Upload    *handler.UploadHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		limiterCfg := middleware.DefaultRateLimiterConfig()
		if cfg.RateLimit.Requests > 0 && cfg.RateLimit.Duration > 0 {
			limiterCfg.RequestsPerSecond = float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration)
			limiterCfg.BurstSize = cfg.RateLimit.Requests
		}
		rateLimiter := middleware.NewClientRateLimiter(limiterCfg)
		v1.Use(rateLimiter.Middleware())

		registerProductRoutes(v1, h)
		registerCategoryRoutes(v1, h)
		registerOrderRoutes(v1, h)

		v1.GET("/dashboard", h.Dashboard.GetDashboard)
		v1.POST("/upload", h.Upload.Upload)
	}

	return router
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerCategoryRoutes(v1 *gin.RouterGroup, h *Handlers) {
	categories := v1.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.GET("/:id", h.Category.Get)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.DELETE("/:id", h.Order.Delete)
	}
}
