// Package http provides the API server, its middleware and the metrics server.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/onlinz/returns/internal/config"
	"github.com/onlinz/returns/internal/metrics"
	returnsHTTP "github.com/onlinz/returns/internal/returns/http"
)

// ReadinessCheck reports whether a dependency can serve requests.
type ReadinessCheck func(ctx context.Context) error

type namedCheck struct {
	name  string
	check ReadinessCheck
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
	router *gin.Engine
	checks []namedCheck
}

// NewServer creates a new API server. Call SetupRouter before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// AddReadinessCheck registers a dependency probed by /ready.
func (s *Server) AddReadinessCheck(name string, check ReadinessCheck) {
	s.checks = append(s.checks, namedCheck{name: name, check: check})
}

// SetupRouter builds the gin router with all middleware and routes.
// metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	receiptHandler *returnsHTTP.ReceiptHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	v1.GET("/zones", receiptHandler.ListZonesHandler)
	v1.POST("/customers/validate", receiptHandler.ValidateCustomerHandler)
	v1.POST("/telephone/format", receiptHandler.FormatTelephoneHandler)
	v1.POST("/quotes", receiptHandler.QuoteHandler)
	v1.POST("/receipts", receiptHandler.CreateReceiptHandler)
	v1.GET("/receipts", receiptHandler.ListReceiptsHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness. GET /health
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler probes every registered dependency. GET /ready
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	ready := true
	components := make(map[string]string, len(s.checks))
	for _, nc := range s.checks {
		if err := nc.check(ctx); err != nil {
			ready = false
			components[nc.name] = "error"
			s.logger.Warn("readiness check failed",
				slog.String("component", nc.name),
				slog.Any("error", err),
			)
			continue
		}
		components[nc.name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
