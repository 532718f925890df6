package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edudata/unidex/internal/services"
	"github.com/edudata/unidex/internal/store"
	"github.com/edudata/unidex/internal/store/migrations"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the reporting queries without ingesting",
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

		return printReports(ctx, services.NewReporter(store.NewStore(db)))
	},
}

func printSummary(summary *services.RunSummary) {
	header := color.New(color.FgGreen, color.Bold)
	header.Println("Ingestion summary")
	fmt.Printf("  countries: %d (failed: %d)\n", summary.Countries, len(summary.Failed))
	fmt.Printf("  fetched:   %d\n", summary.Fetched)
	fmt.Printf("  inserted:  %d\n", summary.Inserted)
	fmt.Printf("  skipped:   %d\n", summary.Skipped)
	fmt.Printf("  total universities in store: %d\n", summary.Total)
}

func printReports(ctx context.Context, reporter *services.Reporter) error {
	header := color.New(color.FgCyan, color.Bold)

	header.Println("Universities per country")
	totals, err := reporter.CountryTotals(ctx)
	if err != nil {
		return err
	}
	for _, t := range totals {
		fmt.Printf("  %-30s %d\n", t.Country, t.Total)
	}

	header.Printf("\nUniversities in %s\n", cfg.Report.Country)
	byCountry, err := reporter.UniversitiesByCountry(ctx, cfg.Report.Country, cfg.Report.Limit, 0)
	if err != nil {
		return err
	}
	for _, u := range byCountry {
		fmt.Printf("  %s\n", u.Name)
	}

	header.Printf("\nUniversities matching %q\n", cfg.Report.SearchTerm)
	matches, err := reporter.Search(ctx, cfg.Report.SearchTerm, cfg.Report.Limit, 0)
	if err != nil {
		return err
	}
	for _, u := range matches {
		fmt.Printf("  %-50s %s\n", u.Name, u.CountryName)
	}

	return nil
}
