package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestProbeFallsBackToPlainHTTP tests that a TLS failure on the HTTPS
// attempt triggers exactly one plain-HTTP retry. The test server speaks
// plain HTTP, so the HTTPS attempt fails at the TLS layer.
func TestProbeFallsBackToPlainHTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title>Lean Site</title></head><body>Under Construction</body></html>"))
	}))
	defer server.Close()

	host := strings.TrimPrefix(server.URL, "http://")
	p := New(WithTimeout(5 * time.Second))

	result := p.Probe(context.Background(), host)

	if !result.Reached {
		t.Fatalf("probe should reach plain-HTTP server via fallback, got failure %q", result.FailureReason)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, expected 200", result.StatusCode)
	}
	if result.Title != "Lean Site" {
		t.Errorf("Title = %q, expected %q", result.Title, "Lean Site")
	}
	if !strings.Contains(result.BodyText, "under construction") {
		t.Errorf("BodyText = %q, expected lowercased page text", result.BodyText)
	}
	if result.CrossDomainRedirect {
		t.Error("same-host fetch must not flag a cross-domain redirect")
	}
}

// TestProbeFollowsSameHostRedirect tests that redirects within the same
// host are followed and not flagged as cross-domain.
func TestProbeFollowsSameHostRedirect(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/landing", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/landing", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>You made it</body></html>"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	host := strings.TrimPrefix(server.URL, "http://")
	p := New(WithTimeout(5 * time.Second))

	result := p.Probe(context.Background(), host)

	if !result.Reached {
		t.Fatalf("probe failed: %q", result.FailureReason)
	}
	if !strings.HasSuffix(result.FinalURL, "/landing") {
		t.Errorf("FinalURL = %q, expected redirect target", result.FinalURL)
	}
	if result.CrossDomainRedirect {
		t.Error("redirect within the same host must not be cross-domain")
	}
}

// TestProbeUnreachable tests that total failure yields a reason, not a
// panic or error.
func TestProbeUnreachable(t *testing.T) {
	t.Parallel()

	// Reserve a port then close it so the connection is refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host := strings.TrimPrefix(server.URL, "http://")
	server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p := New(WithTimeout(2 * time.Second))
	result := p.Probe(ctx, host)

	if result.Reached {
		t.Fatal("probe of a closed port must not report reached")
	}
	if result.FailureReason == "" {
		t.Error("failed probe must carry a failure reason")
	}
}

// TestCrossDomain tests registrable-domain comparison.
func TestCrossDomain(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		requested string
		finalHost string
		expected  bool
	}{
		{"identical", "example.com", "example.com", false},
		{"www prefix", "example.com", "www.example.com", false},
		{"sibling subdomain", "example.com", "shop.example.com", false},
		{"different domain", "example.com", "parking-lot.net", true},
		{"different com domain", "altavista.com", "search.yahoo.com", true},
		{"empty final host", "example.com", "", false},
		{"multi-label suffix", "example.co.uk", "example.co.uk", false},
		{"different under co.uk", "example.co.uk", "other.co.uk", true},
		{"trailing dot", "example.com", "example.com.", false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := crossDomain(tc.requested, tc.finalHost); got != tc.expected {
				t.Errorf("crossDomain(%q, %q) = %v, expected %v",
					tc.requested, tc.finalHost, got, tc.expected)
			}
		})
	}
}

// TestRegistrableDomainFallback tests hosts the public suffix list cannot
// place.
func TestRegistrableDomainFallback(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		host     string
		expected string
	}{
		{"127.0.0.1:8080", "127.0.0.1"},
		{"localhost", "localhost"},
		{"www.example.com", "example.com"},
		{"deep.sub.example.com", "example.com"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.host, func(t *testing.T) {
			t.Parallel()
			if got := registrableDomain(tc.host); got != tc.expected {
				t.Errorf("registrableDomain(%q) = %q, expected %q", tc.host, got, tc.expected)
			}
		})
	}
}
