// Package model defines the core data types shared across the scanner:
// catalog entries, probe and registry outcomes, per-domain records, and
// the final report structure.
package model
