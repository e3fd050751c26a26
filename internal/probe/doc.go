// Package probe implements the HTTP prober: it fetches a domain's web
// page over HTTPS with a plain-HTTP fallback on TLS failures, follows a
// bounded number of redirects, and extracts the visible page text for
// classification. Network failures are captured as probe outcomes, never
// returned as errors.
package probe
