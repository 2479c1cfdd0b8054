// Package api serves the board over HTTP with gin
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/events"
)

const (
	defaultPingInterval    = 30 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// Server is the tablero HTTP server
type Server struct {
	app          *app.App
	hub          *events.Hub
	router       *gin.Engine
	logger       *slog.Logger
	pingInterval time.Duration
}

// ServerOption configures a Server
type ServerOption func(*Server)

// WithHub enables GET /api/events and /api/metrics
func WithHub(hub *events.Hub) ServerOption {
	return func(s *Server) {
		s.hub = hub
	}
}

// WithServerLogger sets the request logger
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPingInterval sets how often idle event streams get a keepalive
func WithPingInterval(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 {
			s.pingInterval = d
		}
	}
}

// NewServer creates a server over the app's services
func NewServer(a *app.App, opts ...ServerOption) *Server {
	s := &Server{
		app:          a,
		logger:       a.Logger(),
		pingInterval: defaultPingInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(s.logger))
	s.router = router
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.GET("/projects", s.handleListProjects)
		api.POST("/projects", s.handleCreateProject)
		api.GET("/projects/:id", s.handleGetProject)
		api.PATCH("/projects/:id", s.handleUpdateProject)
		api.DELETE("/projects/:id", s.handleDeleteProject)
		api.GET("/projects/:id/board", s.handleGetBoard)
		api.GET("/projects/:id/columns", s.handleListColumns)
		api.POST("/projects/:id/columns", s.handleCreateColumn)
		api.PUT("/projects/:id/columns/order", s.handleReorderColumns)
		api.GET("/projects/:id/statuses", s.handleColumnStatuses)
		api.GET("/projects/:id/labels", s.handleListLabels)
		api.POST("/projects/:id/labels", s.handleCreateLabel)

		api.GET("/columns/:id", s.handleGetColumn)
		api.PATCH("/columns/:id", s.handleRenameColumn)
		api.DELETE("/columns/:id", s.handleDeleteColumn)
		api.GET("/columns/:id/tasks", s.handleListColumnTasks)
		api.POST("/columns/:id/tasks", s.handleCreateTask)
		api.PUT("/columns/:id/tasks/order", s.handleReorderTasks)

		api.GET("/tasks", s.handleListTasksByStatus)
		api.GET("/tasks/:id", s.handleGetTask)
		api.PATCH("/tasks/:id", s.handleUpdateTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)
		api.PUT("/tasks/:id/move", s.handleMoveTask)
		api.POST("/tasks/:id/labels/:labelID", s.handleAttachLabel)
		api.DELETE("/tasks/:id/labels/:labelID", s.handleDetachLabel)
		api.POST("/tasks/:id/checklist", s.handleAddChecklistItem)

		api.PATCH("/checklist/:id", s.handleUpdateChecklistItem)
		api.POST("/checklist/:id/toggle", s.handleToggleChecklistItem)
		api.DELETE("/checklist/:id", s.handleDeleteChecklistItem)

		api.PATCH("/labels/:id", s.handleUpdateLabel)
		api.DELETE("/labels/:id", s.handleDeleteLabel)

		api.GET("/statuses", s.handleListStatuses)
		api.GET("/statuses/map", s.handleMapStatus)

		api.GET("/events", s.handleEvents)
		api.GET("/metrics", s.handleMetrics)
	}
}

// Handler returns the root http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// Close event streams first so Shutdown doesn't wait on them
	if s.hub != nil {
		s.hub.Shutdown()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("http server stopped")
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"status": "ok"})
}
