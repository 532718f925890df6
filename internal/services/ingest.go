package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edudata/unidex/internal/models"
	"github.com/edudata/unidex/internal/store"
)

// Fetcher fetches the raw record batch for one country.
type Fetcher interface {
	Universities(ctx context.Context, country string) ([]models.RawRecord, error)
}

// Ingestor drives the ingestion pipeline: one catalog request per configured
// country, upserted into the store under a per-country transaction.
type Ingestor struct {
	store     *store.Store
	catalog   Fetcher
	countries []string
}

func NewIngestor(st *store.Store, catalog Fetcher, countries []string) *Ingestor {
	return &Ingestor{
		store:     st,
		catalog:   catalog,
		countries: countries,
	}
}

// RunSummary accumulates the totals of one ingestion run.
type RunSummary struct {
	RunID     string
	Countries int
	Fetched   int
	Inserted  int
	Skipped   int
	Failed    []string
	// Total is the university row count after the last commit, including
	// rows left behind by earlier runs.
	Total int64
}

// Run performs the full ETL over the configured country list. Fetch failures
// degrade the affected country to an empty batch and the run continues;
// store failures abort immediately. Each country is committed before the
// next one is fetched, so an interrupted run leaves only whole countries
// behind.
func (s *Ingestor) Run(ctx context.Context) (*RunSummary, error) {
	log := zap.S().Named("ingest")

	summary := &RunSummary{
		RunID:     uuid.NewString(),
		Countries: len(s.countries),
	}
	log.Infow("starting ingestion run", "run_id", summary.RunID, "countries", summary.Countries)

	for _, country := range s.countries {
		records, err := s.catalog.Universities(ctx, country)
		if err != nil {
			log.Errorw("fetch failed, country degraded to empty batch", "country", country, "error", err)
			summary.Failed = append(summary.Failed, country)
			records = nil
		}
		log.Infow("fetched country batch", "country", country, "raw_records", len(records))

		var inserted, skipped int
		err = s.store.Transaction(ctx, func(st *store.Store) error {
			for _, rec := range records {
				ok, err := s.upsert(ctx, st, rec)
				if err != nil {
					return err
				}
				if ok {
					inserted++
				} else {
					skipped++
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		summary.Fetched += len(records)
		summary.Inserted += inserted
		summary.Skipped += skipped

		total, err := s.store.Universities().Count(ctx)
		if err != nil {
			return nil, err
		}
		summary.Total = total

		log.Infow("country committed",
			"country", country,
			"inserted", inserted,
			"skipped", skipped,
			"running_total", total)
	}

	log.Infow("ingestion run finished",
		"run_id", summary.RunID,
		"fetched", summary.Fetched,
		"inserted", summary.Inserted,
		"skipped", summary.Skipped,
		"total", summary.Total)

	return summary, nil
}

// upsert maps one raw record onto a stored row. The country row is resolved
// (and created on first sight) before the dedup check, so a duplicate
// university can still leave a new country behind.
func (s *Ingestor) upsert(ctx context.Context, st *store.Store, rec models.RawRecord) (bool, error) {
	countryID, err := st.Countries().GetOrCreate(ctx, strings.TrimSpace(rec.Country))
	if err != nil {
		return false, err
	}

	name := strings.TrimSpace(rec.Name)
	state := rec.State()

	exists, err := st.Universities().Exists(ctx, name, countryID, state)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	_, err = st.Universities().Insert(ctx, models.University{
		Name:          name,
		CountryID:     countryID,
		AlphaTwoCode:  rec.AlphaTwoCode,
		StateProvince: state,
		Domains:       rec.Domains,
		WebPages:      rec.WebPages,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
