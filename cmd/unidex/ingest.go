package main

import (
	"github.com/spf13/cobra"

	"github.com/edudata/unidex/internal/services"
	"github.com/edudata/unidex/internal/store"
	"github.com/edudata/unidex/internal/store/migrations"
	"github.com/edudata/unidex/pkg/catalog"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run the full ETL over the configured country list, then print the reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := store.NewDB(cfg.Store.DataFile)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migrations.Run(ctx, db); err != nil {
			return err
		}

		st := store.NewStore(db)
		client := catalog.NewClient(catalog.Config{
			BaseURL:        cfg.Catalog.BaseURL,
			Timeout:        cfg.Catalog.Timeout,
			MaxAttempts:    cfg.Catalog.MaxAttempts,
			InitialBackoff: cfg.Catalog.InitialBackoff,
			Multiplier:     cfg.Catalog.Multiplier,
		})

		ingestor := services.NewIngestor(st, client, cfg.Ingest.Countries)
		summary, err := ingestor.Run(ctx)
		if err != nil {
			return err
		}
		printSummary(summary)

		return printReports(ctx, services.NewReporter(st))
	},
}
