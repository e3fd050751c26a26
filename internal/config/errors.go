package config

import "errors"

// Configuration validation errors.
// Package-level sentinel errors let callers use errors.Is() for
// programmatic handling while keeping human-readable messages.
var (
	// ErrInvalidWorkers is returned when the worker count is outside
	// [1, MaxWorkers]. Zero workers would never scan anything; too many
	// trip WHOIS rate limits.
	ErrInvalidWorkers = errors.New("invalid worker count: must be between 1 and 50")

	// ErrInvalidTimeout is returned when the per-request timeout is not
	// positive. A zero timeout would fail every probe immediately.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrNoOutputPath is returned when the report output path is empty.
	ErrNoOutputPath = errors.New("no output path: report destination must be set")

	// ErrConflictingFormats is returned when both --json and --markdown
	// console formats are requested. Only one can be used at a time.
	ErrConflictingFormats = errors.New("conflicting console formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when the max body size is
	// negative. Use 0 to fall back to the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")
)
