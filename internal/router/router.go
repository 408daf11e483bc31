package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pageza/vexine/backend/config"
	"github.com/pageza/vexine/backend/internal/api"
	"github.com/pageza/vexine/backend/internal/middleware"
	"github.com/pageza/vexine/backend/internal/service"
	"github.com/rs/zerolog"
)

// SetupRouter configures the application routes. limiter may be nil, in which
// case the API is served without rate limiting. Only cfg.TrustedProxies may
// set the client IP through X-Forwarded-For.
func SetupRouter(
	cfg *config.Config,
	logger zerolog.Logger,
	assessmentService service.IAssessmentService,
	limiter *middleware.RateLimiter,
) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check endpoint (never rate limited)
	router.GET("/health", api.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter.RateLimitMiddleware())
	}

	api.NewAssessmentHandler(assessmentService).RegisterRoutes(v1)

	return router, nil
}
