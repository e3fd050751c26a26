package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yomawari/domainscan/internal/catalog"
	"github.com/yomawari/domainscan/internal/classify"
	"github.com/yomawari/domainscan/internal/config"
	"github.com/yomawari/domainscan/internal/database"
	"github.com/yomawari/domainscan/internal/model"
	"github.com/yomawari/domainscan/internal/pipeline"
	"github.com/yomawari/domainscan/internal/probe"
	"github.com/yomawari/domainscan/internal/registry"
	"github.com/yomawari/domainscan/internal/report"
	"github.com/yomawari/domainscan/internal/score"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the domain catalog and report each domain's status",
		Long: `Scan probes every domain in the catalog over HTTPS (with a plain HTTP
fallback), classifies what it found, and scores each domain's
acquisition worth.

Classification statuses:
- active:    a real site answered
- parked:    a registrar or parking page answered
- for_sale:  the page offers the domain for purchase
- redirect:  the domain forwards to a different site
- expired:   registered but no longer resolving
- available: no registration record exists

Examples:
  # Scan the full catalog
  domainscan scan

  # Scan only the domains from the 2005 top-sites list
  domainscan scan --year 2005

  # Quick smoke test: first five domains of each year
  domainscan scan --quick

  # Print the full JSON report to stdout
  domainscan scan --json

  # Use a custom catalog and output path
  domainscan scan --catalog mylist.yaml --output results.json`,
		Args: cobra.NoArgs,
		RunE: runScanCmd,
	}

	// Input flags
	cmd.Flags().StringP("catalog", "c", "",
		"Catalog file path (default: domains.yaml in current or XDG config directory)")
	cmd.Flags().IntP("year", "y", 0,
		"Only scan domains that appeared in this top-sites year")
	cmd.Flags().BoolP("quick", "q", false,
		fmt.Sprintf("Only scan the first %d domains of each year", config.DefaultQuickPerYear))

	// Scan behavior flags
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		fmt.Sprintf("Number of concurrent domain checks (max %d)", config.MaxWorkers))
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each HTTP probe and WHOIS query")

	// Report flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"Write the JSON report to this file path")
	cmd.Flags().BoolP("json", "j", false,
		"Print the full JSON report to stdout (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print a Markdown summary to stdout (mutually exclusive with --json)")
	cmd.Flags().Bool("no-db", false,
		"Skip archiving the run in the local database")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.CatalogPath, err = cmd.Flags().GetString("catalog")
	if err != nil {
		return nil, err
	}

	cfg.FilterYear, err = cmd.Flags().GetInt("year")
	if err != nil {
		return nil, err
	}

	cfg.Quick, err = cmd.Flags().GetBool("quick")
	if err != nil {
		return nil, err
	}

	cfg.Workers, err = cmd.Flags().GetInt("workers")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.OutputPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.JSONConsole, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownConsole, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	noDB, err := cmd.Flags().GetBool("no-db")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noDB

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runScan executes the scan.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	entries, err := loadEntries(cfg)
	if err != nil {
		return err
	}

	logger.Info("starting scan",
		"domains", len(entries),
		"workers", cfg.Workers,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if archiving is enabled
	var db *database.ScanDB
	if cfg.SaveToDB {
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "path", db.Path())

		if previous, err := db.LatestReport(ctx); err != nil {
			logger.Warn("failed to read previous run", "error", err)
		} else if previous != nil {
			logger.Debug("previous run found",
				"generatedAt", previous.GeneratedAt,
				"domains", previous.TotalDomains,
				"acquirable", previous.Acquirable(),
			)
		}
	}

	batch := newBatch(cfg, logger)

	fmt.Printf("Checking %d domains (workers: %d)...\n\n", len(entries), cfg.Workers)
	startTime := time.Now()

	records, err := batch.Run(ctx, entries, func(completed, total int, record *model.DomainRecord) {
		fmt.Printf("[%d/%d] %-30s %s (score %d)\n",
			completed, total, record.Domain, record.Status, record.Score)
	})
	if err != nil {
		return fmt.Errorf("scan aborted: %w", err)
	}

	fmt.Printf("\nScan completed in %s\n", time.Since(startTime).Round(time.Millisecond))

	rep := model.NewReport(records, cfg.Workers)

	if err := report.WriteFile(cfg.OutputPath, rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("Report written to %s\n", cfg.OutputPath)

	if err := outputReport(cfg, rep); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	if db != nil {
		scanID, err := db.SaveReport(ctx, rep)
		if err != nil {
			// Archiving is best effort; the report file already exists.
			logger.Error("failed to archive scan", "error", err)
		} else {
			logger.Info("scan archived", "scanID", scanID)
		}
	}

	return nil
}

// loadEntries finds, loads, and filters the domain catalog.
func loadEntries(cfg *config.Config) ([]model.CatalogEntry, error) {
	path := catalog.FindCatalogFile(cfg.CatalogPath)
	if path == "" {
		if cfg.CatalogPath != "" {
			return nil, fmt.Errorf("catalog file not found: %s", cfg.CatalogPath)
		}
		return nil, fmt.Errorf("no catalog file found (looked for %s in the current directory and %s)",
			config.DefaultCatalogFile, config.XDGConfigDir())
	}

	file, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}

	entries, err := file.Build(catalog.BuildOptions{
		FilterYear: cfg.FilterYear,
		Quick:      cfg.Quick,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build scan list: %w", err)
	}
	return entries, nil
}

// newBatch assembles the evaluation pipeline from the configuration.
func newBatch(cfg *config.Config, logger *slog.Logger) *pipeline.Batch {
	prober := probe.New(
		probe.WithTimeout(cfg.Timeout),
		probe.WithUserAgent(cfg.UserAgent),
		probe.WithMaxBodySize(cfg.MaxBodySize),
	)
	lookup := registry.NewClient(
		registry.WithTimeout(cfg.Timeout),
		registry.WithLogger(logger),
	)
	evaluator := pipeline.NewEvaluator(
		prober,
		classify.New(classify.DefaultRuleset()),
		lookup,
		score.New(score.DefaultWeights()),
		pipeline.WithLogger(logger),
	)
	return pipeline.NewBatch(evaluator,
		pipeline.WithWorkers(cfg.Workers),
		pipeline.WithBatchLogger(logger),
	)
}

// outputReport prints the report to stdout in the requested format.
func outputReport(cfg *config.Config, rep *model.Report) error {
	return writeConsole(os.Stdout, cfg, rep)
}

// writeConsole renders the report to out in the configured format.
func writeConsole(out io.Writer, cfg *config.Config, rep *model.Report) error {
	var w report.Writer
	switch {
	case cfg.JSONConsole:
		w = report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownConsole:
		w = report.NewMarkdownWriter(out)
	default:
		w = report.NewSimpleWriter(out)
	}
	_, err := w.Write(rep)
	return err
}
