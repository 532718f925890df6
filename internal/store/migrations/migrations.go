// Package migrations creates and evolves the database schema. Run is
// idempotent and safe to call on every process start.
package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type migration struct {
	version    int
	statements []string
}

var all = []migration{
	{
		version: 1,
		statements: []string{
			`CREATE SEQUENCE IF NOT EXISTS countries_id_seq`,
			`CREATE TABLE IF NOT EXISTS countries (
				id BIGINT PRIMARY KEY DEFAULT nextval('countries_id_seq'),
				name TEXT NOT NULL UNIQUE
			)`,
			`CREATE SEQUENCE IF NOT EXISTS universities_id_seq`,
			`CREATE TABLE IF NOT EXISTS universities (
				id BIGINT PRIMARY KEY DEFAULT nextval('universities_id_seq'),
				name TEXT NOT NULL,
				country_id BIGINT NOT NULL REFERENCES countries(id),
				alpha_two_code TEXT,
				state_province TEXT,
				domains TEXT NOT NULL DEFAULT '',
				web_pages TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE INDEX IF NOT EXISTS idx_universities_country ON universities(country_id)`,
			`CREATE INDEX IF NOT EXISTS idx_universities_name ON universities(name)`,
		},
	},
}

// Run applies all pending migrations, tracking applied versions in the
// schema_migrations table.
func Run(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range all {
		applied, err := isApplied(ctx, db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		zap.S().Named("migrations").Infow("applying migration", "version", m.version)
		for _, stmt := range m.statements {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration %d failed: %w", m.version, err)
			}
		}

		if _, err := db.ExecContext(ctx,
			`INSERT INTO schema_migrations (version) VALUES (?)`, m.version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
	}

	return nil
}

func isApplied(ctx context.Context, db *sql.DB, version int) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, version).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %d: %w", version, err)
	}
	return count > 0, nil
}
