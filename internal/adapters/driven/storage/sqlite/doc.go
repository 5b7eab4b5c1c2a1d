// Package sqlite persists analysis runs in a SQLite database.
//
// It uses modernc.org/sqlite, a pure Go driver, so the binary builds
// without CGO. A run is stored as one row in runs plus one row per
// record in records, ordered by position.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Applied versions are recorded in
// schema_migrations.
//
// # Data Location
//
// By default the database lives at ~/.satya/data/history.db.
package sqlite
