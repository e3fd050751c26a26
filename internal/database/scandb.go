package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/yomawari/domainscan/internal/model"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "domainscan.db"

// ScanDB provides SQLite-based storage for completed scan runs.
// It manages connection pooling and provides methods for saving and
// retrieving reports.
//
// Design decision: We keep every run in one database file rather than
// one file per run. This keeps the archive in a single place and makes
// the latest-run query trivial.
type ScanDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ScanDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a ScanDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*ScanDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses its own connection string format.
	// mode=rw prevents creating new files; mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer, and a scan writes once at the end,
	// so a single connection is enough.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &ScanDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := sdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sdb, nil
}

// Close closes the database connection.
func (sdb *ScanDB) Close() error {
	return sdb.db.Close()
}

// Path returns the location of the database file.
func (sdb *ScanDB) Path() string {
	return sdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (sdb *ScanDB) createTables() error {
	schema := `
	-- Scans store one row per completed run, with the full report as JSON
	CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		generated_at DATETIME NOT NULL,
		total_domains INTEGER NOT NULL,
		worker_count INTEGER NOT NULL,
		summary_json TEXT NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scans_generated ON scans(generated_at);

	-- Domain records store one row per evaluated domain for SQL queries
	CREATE TABLE IF NOT EXISTS domain_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scan_id INTEGER NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
		domain TEXT NOT NULL,
		status TEXT NOT NULL,
		confidence REAL NOT NULL,
		score INTEGER NOT NULL,
		estimated_value TEXT,
		checked_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_scan ON domain_records(scan_id);
	CREATE INDEX IF NOT EXISTS idx_records_domain ON domain_records(domain);
	CREATE INDEX IF NOT EXISTS idx_records_status ON domain_records(status);
	`

	_, err := sdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveReport stores a completed scan and its records.
// Returns the scan row ID.
func (sdb *ScanDB) SaveReport(ctx context.Context, report *model.Report) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}
	summaryJSON, err := json.Marshal(report.Summary)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize summary: %w", err)
	}

	tx, err := sdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	result, err := tx.ExecContext(ctx,
		`INSERT INTO scans (generated_at, total_domains, worker_count, summary_json, report_json)
		 VALUES (?, ?, ?, ?, ?)`,
		report.GeneratedAt.UTC().Format(time.RFC3339),
		report.TotalDomains,
		report.WorkerCount,
		string(summaryJSON),
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan: %w", err)
	}
	scanID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read scan id: %w", err)
	}

	for _, r := range report.Results {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO domain_records (scan_id, domain, status, confidence, score, estimated_value, checked_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			scanID,
			r.Domain,
			r.Status.String(),
			r.Confidence,
			r.Score,
			r.EstimatedValue,
			r.CheckedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert record for %s: %w", r.Domain, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit scan: %w", err)
	}
	return scanID, nil
}

// LatestReport retrieves the most recently saved report.
// Returns nil without error when the archive is empty.
func (sdb *ScanDB) LatestReport(ctx context.Context) (*model.Report, error) {
	var reportJSON string
	err := sdb.db.QueryRowContext(ctx,
		`SELECT report_json FROM scans ORDER BY id DESC LIMIT 1`,
	).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest scan: %w", err)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse stored report: %w", err)
	}
	return &report, nil
}

// ScanCount returns how many runs the archive holds.
func (sdb *ScanDB) ScanCount(ctx context.Context) (int, error) {
	var count int
	if err := sdb.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scans`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scans: %w", err)
	}
	return count, nil
}

