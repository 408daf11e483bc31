package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/vexine/backend/config"
	"github.com/rs/zerolog"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger zerolog.Logger
}

// New creates a new server instance serving router on the configured address.
func New(cfg *config.Config, logger zerolog.Logger, router *gin.Engine) *Server {
	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start listens until the server is shut down. A graceful shutdown is not
// reported as an error.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down server")
	return s.http.Shutdown(ctx)
}
