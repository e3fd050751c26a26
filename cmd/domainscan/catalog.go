package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yomawari/domainscan/internal/catalog"
	"github.com/yomawari/domainscan/internal/config"
)

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the domain catalog",
		Long: `Catalog lists the years covered by the domain catalog and how many
domains each year holds, without scanning anything. Use it to verify
the catalog file before a run or to find valid --year values.`,
		Args: cobra.NoArgs,
		RunE: runCatalogCmd,
	}

	cmd.Flags().StringP("catalog", "c", "",
		"Catalog file path (default: domains.yaml in current or XDG config directory)")

	return cmd
}

// runCatalogCmd executes the catalog command.
func runCatalogCmd(cmd *cobra.Command, _ []string) error {
	explicit, err := cmd.Flags().GetString("catalog")
	if err != nil {
		return err
	}

	path := catalog.FindCatalogFile(explicit)
	if path == "" {
		if explicit != "" {
			return fmt.Errorf("catalog file not found: %s", explicit)
		}
		return fmt.Errorf("no catalog file found (looked for %s in the current directory and %s)",
			config.DefaultCatalogFile, config.XDGConfigDir())
	}

	file, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Catalog: %s\n\n", path)

	years := file.AvailableYears()
	if len(years) == 0 {
		fmt.Fprintln(out, "The catalog holds no years.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %s\n", "Year", "Domains")
	for _, year := range years {
		fmt.Fprintf(out, "%-6d %d\n", year, len(file.Years[year]))
	}

	entries, err := file.Build(catalog.BuildOptions{})
	if errors.Is(err, catalog.ErrEmptyCatalog) {
		fmt.Fprintln(out, "\nUnique domains: 0")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nUnique domains: %d\n", len(entries))

	return nil
}
