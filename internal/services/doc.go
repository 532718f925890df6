// Package services implements the business logic layer for unidex.
//
// # Architecture Overview
//
//	CLI / HTTP handlers
//	    │
//	    ▼
//	Services Layer
//	    ├── Ingestor ──► Catalog Client, Store
//	    └── Reporter ──► Store
//
// # Ingestor
//
// Ingestor runs the ETL: for every configured country it fetches the full
// batch from the remote catalog, normalizes each record and upserts it into
// the store. One transaction per country; after each commit the cumulative
// university count is read back and logged.
//
// Error containment:
//   - Fetch failures (after the client's retries) degrade that country to an
//     empty batch. The run continues and the country is recorded in
//     RunSummary.Failed.
//   - Records missing name or country never reach the store; the catalog
//     client filters them.
//   - A record matching an existing (name, country, state) triple is skipped
//     silently. Differing domains or web pages do not trigger an update.
//   - Store errors abort the run; countries committed so far stay durable.
//
// # Reporter
//
// Reporter is a stateless facade over the store's read queries: per-country
// totals, the alphabetical listing of one country and the substring name
// search. It backs both the `report` CLI output and the HTTP API.
package services
