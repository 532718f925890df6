package services

import (
	"context"

	"github.com/edudata/unidex/internal/models"
	"github.com/edudata/unidex/internal/store"
)

// Reporter provides the read-only reporting queries over the store.
type Reporter struct {
	store *store.Store
}

func NewReporter(st *store.Store) *Reporter {
	return &Reporter{store: st}
}

// CountryTotals returns the number of universities per country, most first.
func (r *Reporter) CountryTotals(ctx context.Context) ([]models.CountryCount, error) {
	return r.store.Universities().CountByCountry(ctx)
}

// UniversitiesByCountry lists universities of one country alphabetically.
func (r *Reporter) UniversitiesByCountry(ctx context.Context, country string, limit, offset uint64) ([]models.University, error) {
	opts := []store.ListOption{
		store.ByCountryName(country),
		store.OrderByName(),
	}
	return r.store.Universities().List(ctx, paginate(opts, limit, offset)...)
}

// Search lists universities whose name contains term, alphabetically.
func (r *Reporter) Search(ctx context.Context, term string, limit, offset uint64) ([]models.University, error) {
	opts := []store.ListOption{
		store.ByNamePattern("%" + term + "%"),
		store.OrderByName(),
	}
	return r.store.Universities().List(ctx, paginate(opts, limit, offset)...)
}

func paginate(opts []store.ListOption, limit, offset uint64) []store.ListOption {
	if limit > 0 {
		opts = append(opts, store.WithLimit(limit))
	}
	if offset > 0 {
		opts = append(opts, store.WithOffset(offset))
	}
	return opts
}
