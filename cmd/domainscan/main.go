// Package main provides the entry point for the domainscan CLI.
//
// domainscan inventories a catalog of historically popular domains,
// probes each one over HTTP(S), classifies its current status, and
// rates how worthwhile it would be to acquire.
//
// Usage:
//
//	domainscan scan
//	domainscan scan --year 2005 --quick
//
// See --help for all available options.
package main

// main is the entry point for domainscan.
func main() {
	Execute()
}
