package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/aescanero/pricecell/internal/application/pricing"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	metricsmw "github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	ginmetrics "github.com/slok/go-http-metrics/middleware/gin"
	"go.uber.org/zap"
)

// Server represents an HTTP server (API or admin)
type Server struct {
	name     string
	router   *gin.Engine
	server   *http.Server
	pricing  *pricing.Service
	registry *prometheus.Registry
	logger   *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	Mode              string // gin mode; release when empty
	Pricing           *pricing.Service
	Registry          *prometheus.Registry
	Logger            *zap.Logger
}

// NewServer creates the price API server
func NewServer(cfg *Config) *Server {
	s := newServer("api", cfg)
	s.router.Use(requestID())
	s.router.Use(requestLogger(cfg.Logger))

	s.setupRoutes()
	return s
}

// NewAdminServer creates the admin server serving health checks and metrics
func NewAdminServer(cfg *Config) *Server {
	s := newServer("admin", cfg)
	s.setupAdminRoutes()
	return s
}

func newServer(name string, cfg *Config) *Server {
	mode := cfg.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	router := gin.New()
	// /price/ is not a route, so it must not redirect to one
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())

	s := &Server{
		name:     name,
		router:   router,
		pricing:  cfg.Pricing,
		registry: cfg.Registry,
		logger:   cfg.Logger.With(zap.String("server", name)),
	}

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	mdlw := middleware.New(middleware.Config{
		Recorder: metricsmw.NewRecorder(metricsmw.Config{
			Registry: s.registry,
		}),
		Service: "pricecell",
	})

	// per route, so unmatched paths never become handler labels
	s.router.GET("/price", ginmetrics.Handler("/price", mdlw), s.handleGetPrice)
	s.router.PATCH("/price", ginmetrics.Handler("/price", mdlw), s.handlePatchPrice)
	s.router.DELETE("/price", ginmetrics.Handler("/price", mdlw), s.handleDeletePrice)
}

// setupAdminRoutes configures admin routes
func (s *Server) setupAdminRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ready", s.handleReady)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
}

// Handler returns the root handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server on its configured address
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("starting HTTP server", zap.String("addr", ln.Addr().String()))

	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start %s server: %w", s.name, err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown %s server: %w", s.name, err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
