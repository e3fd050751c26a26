// Package database provides SQLite-based storage for completed scans.
//
// This package implements the ScanDB, which stores:
//   - One row per scan run with its status summary
//   - One row per evaluated domain for ad-hoc SQL queries
//   - The full report as JSON for lossless retrieval
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package database
