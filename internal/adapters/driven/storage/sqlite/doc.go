// Package sqlite provides the SQLite-backed outcome ledger.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Every per-accession download outcome is appended to the
// fetch_outcomes table so past runs can be listed with "genome history".
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.rfamops/data/ledger.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. Download workers record
// outcomes in parallel; SQLite runs in WAL mode with a busy timeout.
package sqlite
