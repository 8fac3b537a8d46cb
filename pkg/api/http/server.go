package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snitil/bsm-discovery-backend/internal/graph"
	"github.com/snitil/bsm-discovery-backend/pkg/adapters/metrics/prometheus"
)

// Server represents the HTTP server for the discovery backend
type Server struct {
	router     *gin.Engine
	server     *http.Server
	graphs     *graph.Store
	staticRoot string
	metrics    *prometheus.Collector
	logger     *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Addr       string
	StaticRoot string
	Graphs     *graph.Store
	Metrics    *prometheus.Collector
	Logger     *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(cfg.Logger))
	router.Use(corsMiddleware())
	router.Use(metricsMiddleware(cfg.Metrics))

	s := &Server{
		router:     router,
		graphs:     cfg.Graphs,
		staticRoot: cfg.StaticRoot,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	return s
}

// setupRoutes configures the route table: the two fixed API paths, the
// metrics endpoint, and a static-file fallback for everything else.
func (s *Server) setupRoutes() {
	s.router.GET("/api/health", s.handleHealth)
	s.router.GET("/api/sample-graph", s.handleSampleGraph)

	// Metrics
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	// Fallback to static file serving
	s.router.NoRoute(s.staticHandler())
}

// Router returns the underlying handler, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server, letting in-flight requests finish
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
