package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/vexine/backend/config"
	"github.com/pageza/vexine/backend/internal/database"
	"github.com/pageza/vexine/backend/internal/logging"
	"github.com/pageza/vexine/backend/internal/middleware"
	"github.com/pageza/vexine/backend/internal/router"
	"github.com/pageza/vexine/backend/internal/server"
	"github.com/pageza/vexine/backend/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := logging.New("info", false, nil)
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.LogLevel, cfg.Env.IsProduction(), nil)
	if cfg.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// run owns every resource, so its deferred cleanup finishes before exit
	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	// Rate limiting is optional; continue without it if Redis is not available
	var limiter *middleware.RateLimiter
	if cfg.RedisEnabled() {
		redisClient, err := database.NewRedisClient(context.Background(), cfg, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to connect to redis, rate limiting disabled")
		} else {
			defer redisClient.Close()
			limiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
				Window: cfg.RateLimitWindow,
				Limit:  cfg.RateLimitRequests,
			}, logger)
		}
	}

	assessmentService := service.NewAssessmentService(logger)
	r, err := router.SetupRouter(cfg, logger, assessmentService, limiter)
	if err != nil {
		return err
	}
	srv := server.New(cfg, logger, r)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("received signal")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
