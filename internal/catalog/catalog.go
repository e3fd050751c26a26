package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yomawari/domainscan/internal/config"
	"github.com/yomawari/domainscan/internal/model"
)

// Catalog loading errors.
var (
	// ErrCatalogNotFound is returned when no catalog file exists at the
	// given or default locations.
	ErrCatalogNotFound = errors.New("catalog file not found")

	// ErrEmptyCatalog is returned when the catalog parses but contains no
	// domains after filtering.
	ErrEmptyCatalog = errors.New("catalog contains no domains")

	// ErrYearNotFound is returned when a year filter does not match any
	// catalog year.
	ErrYearNotFound = errors.New("year not present in catalog")
)

// File is the parsed catalog document. The on-disk format is YAML:
//
//	years:
//	  2004:
//	    - google.com
//	    - yahoo.com
//	  2005:
//	    - google.com
type File struct {
	// Years maps a top-sites year to the ordered list of domains that
	// appeared in it.
	Years map[int][]string `yaml:"years"`
}

// Load reads and parses the catalog file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided catalog path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCatalogNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if f.Years == nil {
		f.Years = make(map[int][]string)
	}
	return &f, nil
}

// FindCatalogFile searches for the catalog file in order:
//  1. the explicit path, if given
//  2. domains.yaml in the current directory
//  3. domains.yaml in the XDG config directory
//
// Returns the path if found, or empty string.
func FindCatalogFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		local := filepath.Join(cwd, config.DefaultCatalogFile)
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}

	xdgPath := filepath.Join(config.XDGConfigDir(), config.DefaultCatalogFile)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}

	return ""
}

// AvailableYears returns the catalog's years sorted ascending.
func (f *File) AvailableYears() []int {
	years := make([]int, 0, len(f.Years))
	for y := range f.Years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// BuildOptions controls how the catalog is turned into scan entries.
type BuildOptions struct {
	// FilterYear keeps only domains that appeared in this year.
	// Zero means all years.
	FilterYear int

	// Quick keeps only the first QuickPerYear domains of each year
	// before deduplication.
	Quick bool

	// QuickPerYear is the per-year cap in quick mode. Zero uses the
	// default.
	QuickPerYear int
}

// Build produces the deduplicated, sorted entry list for a scan.
// Each domain carries the sorted set of years it appeared in.
func (f *File) Build(opts BuildOptions) ([]model.CatalogEntry, error) {
	years := f.AvailableYears()
	if opts.FilterYear != 0 {
		if _, ok := f.Years[opts.FilterYear]; !ok {
			return nil, fmt.Errorf("%w: %d (available: %v)", ErrYearNotFound, opts.FilterYear, years)
		}
		years = []int{opts.FilterYear}
	}

	perYear := opts.QuickPerYear
	if perYear <= 0 {
		perYear = config.DefaultQuickPerYear
	}

	domainYears := make(map[string][]int)
	for _, year := range years {
		domains := f.Years[year]
		if opts.Quick && len(domains) > perYear {
			domains = domains[:perYear]
		}
		for _, d := range domains {
			d = strings.ToLower(strings.TrimSpace(d))
			if d == "" {
				continue
			}
			domainYears[d] = append(domainYears[d], year)
		}
	}

	if len(domainYears) == 0 {
		return nil, ErrEmptyCatalog
	}

	entries := make([]model.CatalogEntry, 0, len(domainYears))
	for domain, ys := range domainYears {
		entries = append(entries, model.CatalogEntry{
			Domain: domain,
			Years:  dedupYears(ys),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Domain < entries[j].Domain
	})
	return entries, nil
}

// dedupYears sorts years and removes duplicates.
func dedupYears(years []int) []int {
	sort.Ints(years)
	out := make([]int, 0, len(years))
	for _, y := range years {
		if len(out) == 0 || y != out[len(out)-1] {
			out = append(out, y)
		}
	}
	return out
}
