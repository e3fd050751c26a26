package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yomawari/domainscan/internal/model"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) *ScanDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testReport(domains ...string) *model.Report {
	checked := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	records := make([]*model.DomainRecord, 0, len(domains))
	for i, d := range domains {
		records = append(records, &model.DomainRecord{
			Domain:         d,
			Years:          []int{2005},
			Status:         model.AllStatuses[i%len(model.AllStatuses)],
			Confidence:     0.9,
			Score:          5 + i%3,
			ScoreBreakdown: map[string]float64{"tld": 1.0},
			CheckedAt:      checked,
		})
	}
	return model.NewReport(records, 10)
}

// TestOpen tests database opening and creation.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "newdir", "subdir")
		db, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dbDir, dbFileName)); os.IsNotExist(err) {
			t.Error("database file was not created")
		}
	})

	t.Run("CreateIfNotExists=false returns error when database does not exist", func(t *testing.T) {
		t.Parallel()

		opts := Options{CreateIfNotExists: false, EnableWAL: true}
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error opening a missing database")
		}
	})
}

// TestSaveAndLatestReport tests the round trip through the archive.
func TestSaveAndLatestReport(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	first := testReport("one.com", "two.net")
	if _, err := db.SaveReport(ctx, first); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}
	second := testReport("three.org")
	if _, err := db.SaveReport(ctx, second); err != nil {
		t.Fatalf("second SaveReport failed: %v", err)
	}

	count, err := db.ScanCount(ctx)
	if err != nil {
		t.Fatalf("ScanCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("ScanCount = %d, expected 2", count)
	}

	latest, err := db.LatestReport(ctx)
	if err != nil {
		t.Fatalf("LatestReport failed: %v", err)
	}
	if latest == nil {
		t.Fatal("LatestReport returned nil for a populated archive")
	}
	if latest.TotalDomains != 1 {
		t.Errorf("latest report holds %d domains, expected 1", latest.TotalDomains)
	}
	if latest.Results[0].Domain != "three.org" {
		t.Errorf("latest report domain = %q, expected three.org", latest.Results[0].Domain)
	}
}

// TestLatestReportEmpty tests the empty archive case.
func TestLatestReportEmpty(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	report, err := db.LatestReport(context.Background())
	if err != nil {
		t.Fatalf("LatestReport failed: %v", err)
	}
	if report != nil {
		t.Errorf("expected nil report from an empty archive, got %+v", report)
	}
}

// TestDomainRecordRows tests that SaveReport writes one queryable row
// per domain.
func TestDomainRecordRows(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	scanID, err := db.SaveReport(ctx, testReport("tracked.com", "other.net"))
	if err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	var count int
	err = db.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM domain_records WHERE scan_id = ?`, scanID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("failed to count records: %v", err)
	}
	if count != 2 {
		t.Errorf("scan %d holds %d records, expected 2", scanID, count)
	}

	var status string
	err = db.db.QueryRowContext(ctx,
		`SELECT status FROM domain_records WHERE scan_id = ? AND domain = ?`,
		scanID, "tracked.com",
	).Scan(&status)
	if err != nil {
		t.Fatalf("failed to read record row: %v", err)
	}
	if !model.Status(status).Valid() {
		t.Errorf("stored status %q is not a report status", status)
	}
}
