package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/invoice-dashboard/config"
	"github.com/yourusername/invoice-dashboard/data"
	"github.com/yourusername/invoice-dashboard/handlers"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	// Initialize storage
	s, err := config.NewStore(context.Background(), cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize store")
	}

	gin.SetMode(cfg.GinMode)
	router := handlers.NewRouter(data.NewService(s, logger), cfg, logger)

	logger.Infof("Starting invoice dashboard API on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Failed to start server")
	}
}
