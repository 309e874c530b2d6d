package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/psgurav-dev/analytics-dashboard/internal/config"
	"github.com/psgurav-dev/analytics-dashboard/internal/handlers"
	"github.com/psgurav-dev/analytics-dashboard/internal/middleware"
)

// Handlers holds the HTTP handler dependencies.
type Handlers struct {
	Table     *handlers.TableHandler
	Analytics *handlers.AnalyticsHandler
	Export    *handlers.ExportHandler
	Bulk      *handlers.BulkActionHandler
}

// HTTPServer wires the data-layer handlers behind a gin engine.
type HTTPServer struct {
	router   *gin.Engine
	config   *config.Config
	logger   *zap.Logger
	handlers *Handlers
}

// New creates a new server instance.
func New(cfg *config.Config, h *Handlers, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		config:   cfg,
		handlers: h,
		logger:   logger,
	}
}

// Setup initializes the router, middleware, and routes.
func (s *HTTPServer) Setup() {
	if s.config.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()
	s.setupMiddleware()
	s.setupRoutes()
}

func (s *HTTPServer) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestID())

	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s.router.Use(middleware.RateLimit(s.config.RateLimit.Global))
}

func (s *HTTPServer) setupRoutes() {
	v1 := s.router.Group("/v1")

	v1.GET("/health", s.healthCheck)
	v1.GET("/info", s.apiInfo)

	v1.GET("/table-data", s.handlers.Table.List)
	v1.GET("/analytics", s.handlers.Analytics.Summary)
	v1.POST("/export-csv", s.handlers.Export.Export)
	v1.POST("/bulk-action", s.handlers.Bulk.Apply)
}

func (s *HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   s.config.Server.Version,
		"uptime":    time.Since(s.config.StartTime).Seconds(),
	})
}

func (s *HTTPServer) apiInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":     s.config.Server.Version,
		"environment": s.config.Server.Environment,
		"dataset": gin.H{
			"size":        s.config.Dataset.Size,
			"window_days": s.config.Dataset.WindowDays,
		},
	})
}

// Start starts the HTTP server and blocks until shutdown.
func (s *HTTPServer) Start() error {
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		s.logger.Info("Starting server",
			zap.Int("port", s.config.Server.Port),
			zap.String("environment", s.config.Server.Environment),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("Server exited")
	return nil
}

// Router returns the gin router for testing.
func (s *HTTPServer) Router() *gin.Engine {
	return s.router
}
