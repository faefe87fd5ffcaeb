// Package sqlite provides a SQLite-backed implementation of the
// KnowledgeStore driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Documents and knowledge
// items are stored in tenant-partitioned tables; every query is scoped by
// tenant id.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory as numbered .up.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.groundkit/data/knowledge.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode. Usage count bumps run inside a transaction
// so counts stay exact under concurrent queries.
package sqlite
