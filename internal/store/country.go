package store

import (
	"context"
	"database/sql"
	"errors"

	srvErrors "github.com/edudata/unidex/pkg/errors"
)

// CountryStore handles the countries table.
type CountryStore struct {
	db Querier
}

func NewCountryStore(db Querier) *CountryStore {
	return &CountryStore{db: db}
}

// GetID looks up a country by exact name.
func (s *CountryStore) GetID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, queryGetCountryByName, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, srvErrors.NewCountryNotFoundError(name)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetOrCreate returns the identifier for name, inserting a new row on first
// sight. Identifiers are stable for the life of the store; repeated calls
// with the same name always return the same id.
func (s *CountryStore) GetOrCreate(ctx context.Context, name string) (int64, error) {
	id, err := s.GetID(ctx, name)
	if err == nil {
		return id, nil
	}
	if !srvErrors.IsCountryNotFoundError(err) {
		return 0, err
	}

	if err := s.db.QueryRowContext(ctx, queryInsertCountry, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
