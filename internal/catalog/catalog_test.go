package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeCatalog writes a catalog fixture to a temp directory and returns
// its path.
func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "domains.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write catalog fixture: %v", err)
	}
	return path
}

const fixture = `years:
  2004:
    - google.com
    - Yahoo.com
    - excite.com
    - lycos.com
    - altavista.com
    - geocities.com
  2005:
    - google.com
    - "  myspace.com  "
    - ""
`

// TestLoad tests parsing a catalog document.
func TestLoad(t *testing.T) {
	t.Parallel()

	f, err := Load(writeCatalog(t, fixture))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	years := f.AvailableYears()
	if len(years) != 2 || years[0] != 2004 || years[1] != 2005 {
		t.Errorf("AvailableYears() = %v, expected [2004 2005]", years)
	}
}

// TestLoadMissingFile tests the not-found sentinel.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrCatalogNotFound) {
		t.Errorf("Load on missing file = %v, expected ErrCatalogNotFound", err)
	}
}

// TestLoadInvalidYAML tests that corrupt catalogs fail loudly.
func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Load(writeCatalog(t, "years: [not: a: mapping"))
	if err == nil {
		t.Error("Load on corrupt YAML should fail")
	}
}

// TestBuild tests deduplication, normalization, and year merging.
func TestBuild(t *testing.T) {
	t.Parallel()

	f, err := Load(writeCatalog(t, fixture))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	entries, err := f.Build(BuildOptions{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// google.com appears in both years but must produce one entry.
	var foundGoogle, foundYahoo bool
	for _, e := range entries {
		switch e.Domain {
		case "google.com":
			foundGoogle = true
			if len(e.Years) != 2 || e.Years[0] != 2004 || e.Years[1] != 2005 {
				t.Errorf("google.com years = %v, expected [2004 2005]", e.Years)
			}
		case "yahoo.com":
			foundYahoo = true // lowercased from Yahoo.com
		case "":
			t.Error("empty domain must be dropped")
		}
	}
	if !foundGoogle || !foundYahoo {
		t.Errorf("expected google.com and yahoo.com in entries: %v", entries)
	}

	// Entries come back sorted by domain.
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Domain > entries[i].Domain {
			t.Fatalf("entries not sorted: %q before %q", entries[i-1].Domain, entries[i].Domain)
		}
	}
}

// TestBuildYearFilter tests the single-year restriction.
func TestBuildYearFilter(t *testing.T) {
	t.Parallel()

	f, err := Load(writeCatalog(t, fixture))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	entries, err := f.Build(BuildOptions{FilterYear: 2005})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(entries) != 2 { // google.com, myspace.com
		t.Errorf("2005 entries = %d, expected 2: %v", len(entries), entries)
	}

	_, err = f.Build(BuildOptions{FilterYear: 1999})
	if !errors.Is(err, ErrYearNotFound) {
		t.Errorf("Build with unknown year = %v, expected ErrYearNotFound", err)
	}
}

// TestBuildQuickMode tests the per-year cap.
func TestBuildQuickMode(t *testing.T) {
	t.Parallel()

	f, err := Load(writeCatalog(t, fixture))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	entries, err := f.Build(BuildOptions{Quick: true, QuickPerYear: 2})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// 2004 contributes google.com + yahoo.com; 2005 contributes
	// google.com + myspace.com. Dedup leaves three entries.
	if len(entries) != 3 {
		t.Errorf("quick entries = %d, expected 3: %v", len(entries), entries)
	}
}

// TestBuildEmpty tests the empty-catalog sentinel.
func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	f, err := Load(writeCatalog(t, "years: {}\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := f.Build(BuildOptions{}); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Build on empty catalog = %v, expected ErrEmptyCatalog", err)
	}
}

// TestFindCatalogFile tests the search order with an explicit path.
func TestFindCatalogFile(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, fixture)
	if got := FindCatalogFile(path); got != path {
		t.Errorf("FindCatalogFile(%q) = %q", path, got)
	}
	if got := FindCatalogFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
		t.Errorf("FindCatalogFile on missing explicit path = %q, expected empty", got)
	}
}
