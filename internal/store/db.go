package store

import (
	"context"
	"database/sql"

	_ "github.com/duckdb/duckdb-go/v2"

	srvErrors "github.com/edudata/unidex/pkg/errors"
)

// NewDB opens the DuckDB database at path, creating the file on first use.
// Use ":memory:" for an in-memory database (tests).
//
// The pool is capped at a single connection: the ingestion pipeline owns the
// store exclusively and relies on one connection for its get-or-create and
// dedup-check semantics.
func NewDB(path string) (*sql.DB, error) {
	dsn := path
	if dsn == ":memory:" {
		dsn = ""
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, srvErrors.NewStoreUnavailableError(path, err)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, srvErrors.NewStoreUnavailableError(path, err)
	}

	return db, nil
}
