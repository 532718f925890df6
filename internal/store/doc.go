// Package store persists the university directory in an embedded DuckDB
// database.
//
// # Schema
//
//	┌─────────────────────────────────────────────────────────┐
//	│ countries                                               │
//	│   id BIGINT PK (countries_id_seq), name TEXT UNIQUE     │
//	├─────────────────────────────────────────────────────────┤
//	│ universities                                            │
//	│   id BIGINT PK (universities_id_seq)                    │
//	│   name TEXT, country_id BIGINT FK → countries(id)       │
//	│   alpha_two_code TEXT NULL, state_province TEXT NULL    │
//	│   domains TEXT, web_pages TEXT (";"-joined lists)       │
//	│   idx_universities_country, idx_universities_name       │
//	└─────────────────────────────────────────────────────────┘
//
// The pipeline only appends: countries are created lazily on first
// reference, universities once per unique (name, country_id, state) triple.
// Neither table is updated or pruned afterwards.
//
// Store wraps a single *sql.DB (capped at one connection) and hands out
// per-entity stores. Store.Transaction rebinds those stores to one
// transaction, which the ingestion pipeline uses as its per-country commit
// boundary. Schema creation lives in the migrations subpackage.
package store
