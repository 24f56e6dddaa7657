package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/planner"
	"github.com/julianstephens/routinely/internal/storage"
)

type Config struct {
	Planner *planner.Service
	// Store backs GET /api/items. Optional.
	Store storage.Provider
}

type Server struct {
	Engine *gin.Engine
}

func New(cfg Config) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

func NewRouter(cfg Config) *gin.Engine {
	if cfg.Planner == nil {
		cfg.Planner = planner.New(nil, nil)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	h := &handler{planner: cfg.Planner, store: cfg.Store}

	r.GET("/healthz", h.health)

	api := r.Group("/api")
	{
		api.POST("/routines/generate", h.generate)
		if cfg.Store != nil {
			api.GET("/items", h.listItems)
		}
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownPeriod)
	defer cancel()
	logger.Info("HTTP server shutting down")
	return srv.Shutdown(shutdownCtx)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}

		switch {
		case status >= 500:
			logger.Error("HTTP request", fields...)
		case status >= 400:
			logger.Warn("HTTP request", fields...)
		default:
			logger.Debug("HTTP request", fields...)
		}
	}
}
