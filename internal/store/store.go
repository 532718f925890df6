package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx,
// allowing the entity stores to run either directly against the database or
// inside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store provides access to all storage repositories.
type Store struct {
	db           *sql.DB
	countries    *CountryStore
	universities *UniversityStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:           db,
		countries:    NewCountryStore(db),
		universities: NewUniversityStore(db),
	}
}

func (s *Store) Countries() *CountryStore {
	return s.countries
}

func (s *Store) Universities() *UniversityStore {
	return s.universities
}

// Transaction runs fn against a Store bound to a single transaction and
// commits it if fn returns nil. The ingestion pipeline uses one transaction
// per country so that an interrupted run leaves only whole countries behind.
func (s *Store) Transaction(ctx context.Context, fn func(*Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &Store{
		db:           s.db,
		countries:    NewCountryStore(tx),
		universities: NewUniversityStore(tx),
	}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

func (s *Store) Close() error {
	return s.db.Close()
}
