package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/edudata/unidex/internal/models"
)

// UniversityStore handles the universities table.
type UniversityStore struct {
	db Querier
}

func NewUniversityStore(db Querier) *UniversityStore {
	return &UniversityStore{db: db}
}

// Exists checks for a row matching the dedup key (name, country, state).
// A NULL or empty state compares as the empty string, mirroring how records
// are deduplicated at insert time.
func (s *UniversityStore) Exists(ctx context.Context, name string, countryID int64, state *string) (bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, queryUniversityExists, name, countryID, state).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert stores a new row and returns its assigned identifier. Rows are
// never updated or deleted afterwards.
func (s *UniversityStore) Insert(ctx context.Context, u models.University) (int64, error) {
	var alphaTwo any
	if u.AlphaTwoCode != "" {
		alphaTwo = u.AlphaTwoCode
	}

	var id int64
	err := s.db.QueryRowContext(ctx, queryInsertUniversity,
		u.Name,
		u.CountryID,
		alphaTwo,
		u.StateProvince,
		models.JoinList(u.Domains),
		models.JoinList(u.WebPages),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Count returns the total number of stored universities.
func (s *UniversityStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, queryCountUniversities).Scan(&count)
	return count, err
}

// CountByCountry returns per-country totals, most universities first.
// Countries with no universities are included with a zero total.
func (s *UniversityStore) CountByCountry(ctx context.Context) ([]models.CountryCount, error) {
	rows, err := s.db.QueryContext(ctx, queryCountByCountry)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.CountryCount
	for rows.Next() {
		var c models.CountryCount
		if err := rows.Scan(&c.Country, &c.Total); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// List returns universities joined with their country, filtered and ordered
// by the given options.
func (s *UniversityStore) List(ctx context.Context, opts ...ListOption) ([]models.University, error) {
	builder := sq.Select(
		"u.id",
		"u.name",
		"u.country_id",
		"c.name",
		"COALESCE(u.alpha_two_code, '')",
		"u.state_province",
		"u.domains",
		"u.web_pages",
	).From("universities u").
		Join("countries c ON c.id = u.country_id")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var universities []models.University
	for rows.Next() {
		var u models.University
		var state sql.NullString
		var domains, webPages string
		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.CountryID,
			&u.CountryName,
			&u.AlphaTwoCode,
			&state,
			&domains,
			&webPages,
		)
		if err != nil {
			return nil, err
		}
		if state.Valid {
			u.StateProvince = &state.String
		}
		u.Domains = models.SplitList(domains)
		u.WebPages = models.SplitList(webPages)
		universities = append(universities, u)
	}

	return universities, rows.Err()
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByCountryName(name string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"c.name": name})
	}
}

// ByNamePattern filters on a SQL LIKE pattern against the university name.
func ByNamePattern(pattern string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Like{"u.name": pattern})
	}
}

func OrderByName() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("u.name")
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}
