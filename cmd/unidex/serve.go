package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edudata/unidex/internal/handlers"
	"github.com/edudata/unidex/internal/server"
	"github.com/edudata/unidex/internal/services"
	"github.com/edudata/unidex/internal/store"
	"github.com/edudata/unidex/internal/store/migrations"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the reporting queries over a read-only HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := store.NewDB(cfg.Store.DataFile)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migrations.Run(ctx, db); err != nil {
			return err
		}

		handler := handlers.New(services.NewReporter(store.NewStore(db)))
		srv := server.NewServer(cfg, func(api *gin.RouterGroup) {
			api.GET("/reports/countries", handler.GetCountryTotals)
			api.GET("/universities", handler.GetUniversities)
		})

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		zap.S().Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	},
}
