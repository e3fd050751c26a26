// Package main provides the entry point for the domainscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for domainscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domainscan",
		Short: "Status scanner for historically popular domains",
		Long: `domainscan checks what became of the web's formerly popular domains.

It loads a catalog of domains that once ranked in top-sites lists,
probes each one over HTTPS (falling back to plain HTTP), classifies it
as active, parked, for sale, redirecting, expired, or available, and
scores how worthwhile it would be to acquire. Results are written to a
JSON report and archived locally.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewCatalogCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
