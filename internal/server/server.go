// Package server provides the read-only HTTP API over the ingested store.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/edudata/unidex/internal/config"
)

type Server struct {
	httpServer *http.Server
}

// NewServer builds the gin engine and registers the API routes under
// /api/v1 through the given callback.
func NewServer(cfg *config.Configuration, registerHandlers func(*gin.RouterGroup)) *Server {
	if cfg.Server.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(ginzap.Ginzap(zap.L().Named("http"), time.RFC3339, false))
	router.Use(ginzap.RecoveryWithZap(zap.L().Named("http"), true))

	api := router.Group("/api/v1")
	registerHandlers(api)

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler: router,
		},
	}
}

// Start blocks until the server stops or fails.
func (s *Server) Start() error {
	zap.S().Named("http").Infow("starting http server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("http").Info("stopping http server")
	return s.httpServer.Shutdown(ctx)
}
