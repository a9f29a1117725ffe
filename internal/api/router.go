package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/internal/api/handlers"
	"github.com/shettigarlolith/LittoralWEB/internal/api/middleware"
	"github.com/shettigarlolith/LittoralWEB/internal/cart"
	"github.com/shettigarlolith/LittoralWEB/internal/catalog"
	"github.com/shettigarlolith/LittoralWEB/internal/checkout"
	"github.com/shettigarlolith/LittoralWEB/internal/config"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, cat *catalog.Service, engine *cart.Engine, mgr *checkout.Manager, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Littoral Storefront API",
			"endpoints": []string{
				"GET /health",
				"GET /metrics",
				"GET /v1/products",
				"GET /v1/products/:id",
				"GET /v1/cart",
				"POST /v1/cart/items",
				"POST /v1/checkout",
				"POST /v1/checkout/:id/order",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/products", handlers.HandleListProducts(cat, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(cat, logger))
		v1.GET("/products/:id/image", handlers.HandleGetProductImage(logger))

		v1.GET("/cart", handlers.HandleGetCart(engine, logger))
		v1.POST("/cart/items", handlers.HandleAddItem(engine, cat, logger))
		v1.PATCH("/cart/items", handlers.HandleUpdateItem(engine, logger))
		v1.DELETE("/cart/items", handlers.HandleRemoveItem(engine, logger))
		v1.DELETE("/cart", handlers.HandleClearCart(engine, logger))
		v1.POST("/cart/promo", handlers.HandleApplyPromo(engine, logger))
		v1.DELETE("/cart/promo", handlers.HandleRemovePromo(engine, logger))

		v1.POST("/checkout", handlers.HandleStartCheckout(mgr, logger))
		v1.GET("/checkout/:id", handlers.HandleGetCheckout(mgr, logger))
		v1.POST("/checkout/:id/details", handlers.HandleSubmitDetails(mgr, logger))
		v1.POST("/checkout/:id/back", handlers.HandleCheckoutBack(mgr, logger))
		v1.POST("/checkout/:id/order", handlers.HandlePlaceOrder(mgr, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
