package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/invoice-dashboard/config"
	"github.com/yourusername/invoice-dashboard/data"
	"github.com/yourusername/invoice-dashboard/middleware"
)

func NewRouter(svc *data.Service, cfg *config.Config, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "invoice-dashboard-api",
		})
	})

	api := router.Group("/api/v1")
	{
		authHandler := NewAuthHandler(svc, cfg)
		api.POST("/login", authHandler.Login)
		api.POST("/refresh", authHandler.Refresh)

		dashboard := NewDashboardHandler(svc)
		protected := api.Group("/dashboard", middleware.JwtAuthMiddleware(cfg))
		protected.GET("/revenue", dashboard.Revenue)
		protected.GET("/cards", dashboard.Cards)
		protected.GET("/invoices", dashboard.Invoices)
		protected.GET("/invoices/latest", dashboard.LatestInvoices)
		protected.GET("/invoices/pages", dashboard.InvoicesPages)
		protected.GET("/invoices/:id", dashboard.Invoice)
		protected.GET("/customers", dashboard.Customers)
		protected.GET("/customers/fields", dashboard.CustomerFields)
	}

	return router
}
