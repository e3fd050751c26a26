// Package catalog loads the domain catalog: the static input set mapping
// each top-sites year to the domains that appeared in it. It builds the
// deduplicated entry list the orchestrator scans.
package catalog
