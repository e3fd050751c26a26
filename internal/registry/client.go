package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/likexian/whois"

	"github.com/yomawari/domainscan/internal/model"
)

// lookupAttempts is how many times a WHOIS query is tried. Registries
// rate-limit aggressively; one backed-off retry recovers most transient
// refusals without hammering them.
const lookupAttempts = 2

// retryBackoff is the pause before the retry.
const retryBackoff = 2 * time.Second

// Client queries domain registration data over WHOIS.
//
// Design decision: The whois client is created once and held on the
// struct so the query timeout is configured in one place, mirroring how
// the prober holds its http.Client.
type Client struct {
	whois  *whois.Client
	logger *slog.Logger

	// backoff between attempts, overridable in tests.
	backoff time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-query timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.whois.SetTimeout(timeout)
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a WHOIS lookup client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		whois:   whois.NewClient(),
		logger:  slog.Default(),
		backoff: retryBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup queries registration data for a domain. It never returns an
// error: persistent failure degrades to Found=false so a rate-limited or
// lying registry can slow one domain down but never abort the scan.
func (c *Client) Lookup(ctx context.Context, domain string) model.RegistryRecord {
	var lastErr error
	for attempt := 1; attempt <= lookupAttempts; attempt++ {
		if ctx.Err() != nil {
			return model.RegistryRecord{Found: false}
		}

		raw, err := c.whois.Whois(domain)
		if err == nil {
			return Parse(raw)
		}
		lastErr = err

		if attempt < lookupAttempts {
			select {
			case <-ctx.Done():
				return model.RegistryRecord{Found: false}
			case <-time.After(c.backoff):
			}
		}
	}

	c.logger.Debug("whois lookup failed", "domain", domain, "error", lastErr)
	return model.RegistryRecord{Found: false}
}

// Refine resolves a deferred classification using registry evidence:
//
//   - no record at all -> available
//   - record exists, expiry in the past -> expired
//   - record exists, not expired, but nothing served over HTTP -> parked
//     (registered and held, no active content)
//
// The confidence reflects how direct the evidence is; the total-failure
// case (probe dead, registry silent) lands at available with low
// confidence rather than aborting anything.
func Refine(record model.RegistryRecord, now time.Time) (model.Status, float64) {
	if !record.Found {
		return model.StatusAvailable, 0.3
	}
	if record.ExpiresOn != nil && record.ExpiresOn.Before(now) {
		return model.StatusExpired, 0.85
	}
	return model.StatusParked, 0.7
}
