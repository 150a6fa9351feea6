// Package sqlite provides a unified SQLite-based implementation of the
// snapshot store interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. It implements multiple
// store interfaces through a single database connection:
//
//   - ReportStore: chat report snapshot persistence
//   - ReportActionStore: report action history persistence
//   - PersonalDetailStore: user profile persistence
//   - PolicyStore: workspace persistence
//   - IOUReportStore: debt aggregate persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.chatpick/data/snapshot.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
