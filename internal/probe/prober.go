package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/yomawari/domainscan/internal/config"
	"github.com/yomawari/domainscan/internal/model"
)

// maxRedirects bounds redirect following per request. Parking chains are
// short; anything deeper is a loop.
const maxRedirects = 10

// attemptsPerScheme is how many times a scheme is tried before giving up
// on it. The second attempt absorbs transient resets and timeouts.
const attemptsPerScheme = 2

// retryDelay is the pause before a same-scheme retry.
const retryDelay = 1 * time.Second

// Prober performs HTTP probing of domains.
//
// Design decision: We keep the http.Client on the struct rather than
// passing it per call because:
//  1. Client configuration (timeouts, redirect policy) must be consistent
//  2. Connection pooling works better with a shared client
//  3. Tests can inject a client pointed at a local server
type Prober struct {
	// client performs the requests. Its redirect policy bounds hop count.
	client *http.Client

	// userAgent is sent with every request.
	userAgent string

	// maxBodySize limits how much of a response body is read.
	maxBodySize int64
}

// Option configures a Prober.
type Option func(*Prober)

// WithClient replaces the HTTP client. The caller owns redirect and
// timeout policy on the provided client.
func WithClient(client *http.Client) Option {
	return func(p *Prober) {
		p.client = client
	}
}

// WithUserAgent sets the User-Agent header for probes.
func WithUserAgent(ua string) Option {
	return func(p *Prober) {
		p.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size to read.
func WithMaxBodySize(size int64) Option {
	return func(p *Prober) {
		p.maxBodySize = size
	}
}

// WithTimeout sets the per-request timeout on the default client.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		p.client.Timeout = timeout
	}
}

// New creates a Prober with defaults suitable for scanning the public web.
func New(opts ...Option) *Prober {
	p := &Prober{
		client: &http.Client{
			Timeout: config.DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		userAgent:   config.DefaultUserAgent,
		maxBodySize: config.DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Probe fetches the domain's web page and returns what it found.
// It never returns an error: every network failure is folded into the
// result with Reached=false and a reason, so one dead domain can never
// fault the scan.
//
// HTTPS is attempted first. Only a TLS-layer failure triggers the plain
// HTTP fallback; DNS and connection failures mean the host itself is
// unreachable and plain HTTP would fail the same way.
func (p *Prober) Probe(ctx context.Context, domain string) model.ProbeResult {
	result, err := p.fetch(ctx, "https://"+domain, domain)
	if err == nil {
		return result
	}

	if isTLSError(err) {
		var httpErr error
		result, httpErr = p.fetch(ctx, "http://"+domain, domain)
		if httpErr == nil {
			return result
		}
		err = httpErr
	}

	return model.ProbeResult{
		Reached:       false,
		FailureReason: failureReason(err),
	}
}

// fetch performs one GET (with a single transient retry) and builds a
// probe result from the response.
func (p *Prober) fetch(ctx context.Context, url, domain string) (model.ProbeResult, error) {
	var lastErr error
	for attempt := 1; attempt <= attemptsPerScheme; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return model.ProbeResult{}, err
		}
		req.Header.Set("User-Agent", p.userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.5")

		resp, err := p.client.Do(req)
		if err == nil {
			return p.analyze(resp, domain)
		}

		lastErr = err
		// TLS and context failures never heal on retry; hand them back
		// so the caller can decide on the fallback.
		if isTLSError(err) || ctx.Err() != nil || attempt == attemptsPerScheme {
			break
		}

		select {
		case <-ctx.Done():
			return model.ProbeResult{}, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return model.ProbeResult{}, lastErr
}

// analyze reads the response and extracts the evidence the classifier
// needs: final URL, status, cross-domain redirect flag, and visible text.
func (p *Prober) analyze(resp *http.Response, domain string) (model.ProbeResult, error) {
	defer resp.Body.Close()

	result := model.ProbeResult{
		Reached:    true,
		StatusCode: resp.StatusCode,
	}

	if resp.Request != nil && resp.Request.URL != nil {
		result.FinalURL = resp.Request.URL.String()
		result.CrossDomainRedirect = crossDomain(domain, resp.Request.URL.Hostname())
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBodySize))
	if err != nil {
		// Header evidence still stands; treat the page as empty.
		return result, nil
	}

	text, err := ExtractText(strings.NewReader(string(body)))
	if err != nil {
		return result, nil
	}
	result.Title = text.Title
	result.BodyText = text.Body

	return result, nil
}

// crossDomain reports whether the final host resolves to a different
// registrable domain than the one requested. A www prefix is never a
// redirect; forwarding to a sibling subdomain of the same registrable
// domain is not one either.
func crossDomain(requested, finalHost string) bool {
	if finalHost == "" {
		return false
	}
	return registrableDomain(requested) != registrableDomain(finalHost)
}

// registrableDomain reduces a host to its eTLD+1, falling back to the
// www-stripped host when the public suffix list cannot place it
// (IP literals, single-label test hosts).
func registrableDomain(host string) string {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimPrefix(host, "www.")

	// IP literals have no registrable domain; compare them as-is.
	if net.ParseIP(host) != nil {
		return host
	}

	etld, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return etld
}

// isTLSError reports whether err is a TLS-layer failure, as opposed to a
// DNS or connection failure. Only TLS failures justify the plain-HTTP
// fallback.
func isTLSError(err error) bool {
	var (
		recordErr   tls.RecordHeaderError
		verifyErr   *tls.CertificateVerificationError
		unknownAuth x509.UnknownAuthorityError
		hostnameErr x509.HostnameError
		invalidErr  x509.CertificateInvalidError
	)
	if errors.As(err, &recordErr) ||
		errors.As(err, &verifyErr) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidErr) {
		return true
	}
	// Handshake alerts surface from net/http without a typed wrapper.
	msg := err.Error()
	return strings.Contains(msg, "tls:") || strings.Contains(msg, "x509:")
}

// failureReason condenses a probe error into a stable, loggable reason.
func failureReason(err error) string {
	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "dns failure"
	}

	if isTLSError(err) {
		return "tls failure"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "connection failed"
	}

	msg := err.Error()
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
