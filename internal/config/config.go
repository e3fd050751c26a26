package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// Numeric values mirror the behavior the scanner was calibrated with:
// a patient per-request timeout (historical domains often sit behind slow
// parking infrastructure) and a moderate worker pool that stays under
// typical WHOIS rate limits.
const (
	// DefaultWorkers is the size of the concurrent worker pool. Ten
	// workers keep a few-hundred-domain catalog scan under a few minutes
	// without tripping registry rate limiting.
	DefaultWorkers = 10

	// MaxWorkers caps the worker pool. Beyond this, WHOIS servers start
	// refusing queries and the extra concurrency buys nothing.
	MaxWorkers = 50

	// DefaultTimeout is the per-request HTTP timeout. Parked and
	// for-sale pages are frequently served from slow ad infrastructure,
	// so this is generous compared to a health-check timeout.
	DefaultTimeout = 15 * time.Second

	// DefaultOutputFile is where the JSON report is written.
	DefaultOutputFile = "domain_results.json"

	// DefaultCatalogFile is the catalog file name searched for when no
	// explicit path is given.
	DefaultCatalogFile = "domains.yaml"

	// DefaultUserAgent is sent with every probe. A mainstream browser
	// string avoids the trivial bot blocks that parking pages apply;
	// a distinctive scanner UA would skew classification toward errors.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultMaxBodySize limits how much of a response body is read.
	// 5MB covers any real landing page while bounding memory per worker.
	DefaultMaxBodySize = 5 * 1024 * 1024

	// DefaultQuickPerYear is how many domains per catalog year survive in
	// quick mode.
	DefaultQuickPerYear = 5

	// AppName is the application name used for XDG directory paths.
	AppName = "domainscan"
)

// Config holds all options for one scan run. It is populated from CLI
// flags and passed through the application by value injection rather than
// global state.
type Config struct {
	// CatalogPath is the path to the domain catalog file. Empty means
	// search the default locations (cwd, then XDG config dir).
	CatalogPath string

	// Workers is the number of concurrent per-domain evaluations.
	Workers int

	// FilterYear restricts the scan to catalog entries that appeared in
	// this year. Zero means no filter.
	FilterYear int

	// Quick keeps only the first few domains per catalog year. Used for
	// smoke-testing the pipeline against live infrastructure.
	Quick bool

	// Timeout is the per-request timeout for HTTP probes and the time
	// limit for each WHOIS query.
	Timeout time.Duration

	// OutputPath is where the JSON report file is written.
	OutputPath string

	// JSONConsole prints the full JSON report to stdout instead of the
	// human-readable summary. Mutually exclusive with MarkdownConsole.
	JSONConsole bool

	// MarkdownConsole prints a Markdown summary to stdout instead of the
	// human-readable one. Mutually exclusive with JSONConsole.
	MarkdownConsole bool

	// Verbose enables debug-level logging.
	Verbose bool

	// UserAgent is the User-Agent header for HTTP probes.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	MaxBodySize int64

	// SaveToDB archives the finished run in the local SQLite database.
	SaveToDB bool

	// DBDir is the directory holding the run archive database.
	DBDir string
}

// NewConfig creates a Config with default values. Many defaults are
// non-zero, so zero-value construction would produce a broken scan.
func NewConfig() *Config {
	return &Config{
		Workers:     DefaultWorkers,
		Timeout:     DefaultTimeout,
		OutputPath:  DefaultOutputFile,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		SaveToDB:    true,
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for domainscan.
// On Linux: ~/.local/share/domainscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for domainscan.
// On Linux: ~/.config/domainscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns a sentinel error
// describing the first problem found. It runs once after flag parsing,
// before any per-domain work begins.
func (c *Config) Validate() error {
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return ErrInvalidWorkers
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.OutputPath == "" {
		return ErrNoOutputPath
	}
	if c.JSONConsole && c.MarkdownConsole {
		return ErrConflictingFormats
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	return nil
}
