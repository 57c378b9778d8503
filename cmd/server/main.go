package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"extractd/internal/config"
	"extractd/internal/handler"
	"extractd/internal/logging"
	"extractd/internal/router"
	"extractd/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	textSvc := service.NewTextExtractionService(cfg.Limits.MaxTextLength)
	sheetsSvc := service.NewSheetsExtractionService(cfg.Limits.MaxURLLength)

	// Initialize handlers
	extractH := handler.NewExtractHandler(textSvc, sheetsSvc, logger)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, logger, extractH, healthH)

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
