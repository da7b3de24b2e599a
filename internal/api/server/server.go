package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/launchos/curve-engine/internal/api/middleware"
	"github.com/launchos/curve-engine/internal/api/rest"
	"github.com/launchos/curve-engine/internal/ledger"
	"github.com/launchos/curve-engine/internal/logger"
	"github.com/launchos/curve-engine/internal/providers/temporal"
	"github.com/launchos/curve-engine/internal/store"
)

// Config holds the API server configuration
type Config struct {
	Debug           bool
	Host            string
	Port            int
	ReadTimeout     int // in seconds
	WriteTimeout    int // in seconds
	IdleTimeout     int // in seconds
	LaunchTaskQueue string
	Auth            middleware.AuthConfig
}

// Server is the curve engine HTTP API server
type Server struct {
	config       Config
	ledger       *ledger.Ledger
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	httpServer   *http.Server
}

// New creates a new API server
func New(cfg Config, ldg *ledger.Ledger, st store.Store, orchestrator temporal.TemporalOrchestrator) *Server {
	return &Server{
		config:       cfg,
		ledger:       ldg,
		store:        st,
		orchestrator: orchestrator,
	}
}

// Start builds the router and serves until Shutdown is called
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	handler := rest.NewHandler(s.config.Debug, s.ledger, s.store, s.orchestrator, s.config.LaunchTaskQueue)
	rest.SetupRoutes(router, handler, s.config.Auth)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.config.IdleTimeout) * time.Second,
	}

	logger.Info("Starting API server", zap.String("addr", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	logger.Info("Shutting down API server")
	return s.httpServer.Shutdown(ctx)
}
