// Package config holds the scan configuration: defaults, validation, and
// the standard directories used for catalog discovery and the run archive.
package config
