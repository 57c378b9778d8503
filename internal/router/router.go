package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"extractd/internal/config"
	"extractd/internal/handler"
	"extractd/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	log *zap.Logger,
	extractH *handler.ExtractHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.CORS))

	// Health checks
	r.GET("/", healthH.Health)
	r.GET("/health", healthH.Health)

	limiter := middleware.NewRateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)

	v1 := r.Group("/api/v1")

	// Extraction routes - rate limited, then token protected
	ex := v1.Group("/extract")
	ex.Use(middleware.RateLimit(limiter))
	ex.Use(middleware.Auth(cfg.Auth.Token))
	ex.POST("/text", extractH.Text)
	ex.POST("/sheets", extractH.Sheets)

	return r
}
