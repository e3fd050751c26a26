package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is injected by release builds via
// -ldflags "-X main.version=v1.2.3". Source builds fall back to the
// module build info.
var version = ""

// buildVersion resolves the version string the CLI reports.
func buildVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// buildRevision returns the short VCS revision recorded in the binary,
// or "unknown" for builds outside a checkout.
func buildRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			if len(setting.Value) > 7 {
				return setting.Value[:7]
			}
			return setting.Value
		}
	}
	return "unknown"
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the domainscan version and the revision it was built from.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "domainscan %s (%s)\n", buildVersion(), buildRevision())
		},
	}
}
