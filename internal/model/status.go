package model

import "fmt"

// Status is the operational state of a scanned domain.
// Exactly one status is assigned to every domain record.
//
// Design decision: We use a string type rather than an integer enum
// because:
//  1. The JSON report is the primary contract, and statuses serialize
//     as their wire names with no custom marshalling
//  2. Database rows and log lines stay human-readable
//  3. Adding a status never renumbers existing values
type Status string

const (
	// StatusActive means the domain serves real web content.
	StatusActive Status = "active"

	// StatusParked means the domain is registered but hosts only a
	// registrar placeholder or ad page.
	StatusParked Status = "parked"

	// StatusForSale means the page advertises the domain itself for
	// purchase, directly or through a marketplace.
	StatusForSale Status = "for_sale"

	// StatusRedirect means the domain forwards visitors to a different
	// registrable domain.
	StatusRedirect Status = "redirect"

	// StatusExpired means a registration record exists but its expiry
	// date is in the past.
	StatusExpired Status = "expired"

	// StatusAvailable means no registration record was found; the domain
	// can likely be registered.
	StatusAvailable Status = "available"

	// StatusUnknown is an internal sentinel used while classification is
	// still pending (HTTP probe inconclusive, registry lookup not yet
	// run). It never appears in a finished report.
	StatusUnknown Status = "unknown"
)

// AllStatuses lists every status that may appear in a finished report,
// in summary display order.
var AllStatuses = []Status{
	StatusActive,
	StatusParked,
	StatusForSale,
	StatusRedirect,
	StatusExpired,
	StatusAvailable,
}

// Valid reports whether s is one of the six report statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusParked, StatusForSale, StatusRedirect, StatusExpired, StatusAvailable:
		return true
	}
	return false
}

// String returns the wire name of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a wire name into a Status.
// It returns an error for anything outside the six report statuses.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return StatusUnknown, fmt.Errorf("unknown domain status %q", s)
	}
	return status, nil
}
