// Package registry implements the WHOIS lookup client: the fallback
// evidence source when the HTTP probe cannot reach a domain. It queries
// registration data, parses the raw response into structured fields, and
// refines a deferred classification into available, expired, or parked.
// Lookup failures are outcomes, never errors.
package registry
