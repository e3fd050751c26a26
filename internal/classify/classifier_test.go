package classify

import (
	"strings"
	"testing"

	"github.com/yomawari/domainscan/internal/model"
)

func reachedProbe(body string) model.ProbeResult {
	return model.ProbeResult{
		Reached:    true,
		StatusCode: 200,
		BodyText:   strings.ToLower(body),
	}
}

// TestClassifyPolicy tests the ordered decision policy.
func TestClassifyPolicy(t *testing.T) {
	t.Parallel()

	c := New(DefaultRuleset())
	substantial := strings.Repeat("real editorial content with many words ", 80)

	testCases := []struct {
		name     string
		entry    model.CatalogEntry
		probe    model.ProbeResult
		expected model.Status
	}{
		{
			name:     "unreached defers to registry",
			entry:    model.CatalogEntry{Domain: "gone-test.test"},
			probe:    model.ProbeResult{Reached: false, FailureReason: "timeout"},
			expected: model.StatusUnknown,
		},
		{
			name:  "cross-domain redirect wins over body content",
			entry: model.CatalogEntry{Domain: "moved.test"},
			probe: model.ProbeResult{
				Reached:             true,
				CrossDomainRedirect: true,
				BodyText:            strings.ToLower(substantial + " buy this domain"),
			},
			expected: model.StatusRedirect,
		},
		{
			name:     "thin but real page stays active",
			entry:    model.CatalogEntry{Domain: "example-thin.test"},
			probe:    reachedProbe("Under Construction"),
			expected: model.StatusActive,
		},
		{
			name:     "thin page with parked marker",
			entry:    model.CatalogEntry{Domain: "parked-test.test"},
			probe:    reachedProbe("This domain is parked"),
			expected: model.StatusParked,
		},
		{
			name:     "registrar parking banner",
			entry:    model.CatalogEntry{Domain: "banner.test"},
			probe:    reachedProbe("This domain is parked free courtesy of the registrar"),
			expected: model.StatusParked,
		},
		{
			name:     "for-sale phrase regardless of page length",
			entry:    model.CatalogEntry{Domain: "sale-test.test"},
			probe:    reachedProbe(substantial + " Buy this domain today"),
			expected: model.StatusForSale,
		},
		{
			name:     "sale platform only counts on thin pages",
			entry:    model.CatalogEntry{Domain: "news.test"},
			probe:    reachedProbe(substantial + " our partner godaddy sponsored this article"),
			expected: model.StatusActive,
		},
		{
			name:     "sale platform on thin page",
			entry:    model.CatalogEntry{Domain: "broker.test"},
			probe:    reachedProbe("premium domain listed at sedo"),
			expected: model.StatusForSale,
		},
		{
			name:  "sale offer carried in the title text",
			entry: model.CatalogEntry{Domain: "titled.test"},
			probe: model.ProbeResult{
				Reached:    true,
				StatusCode: 200,
				Title:      "Buy this domain - premium listing",
				BodyText:   "buy this domain - premium listing welcome to our upcoming site.",
			},
			expected: model.StatusForSale,
		},
		{
			name:  "placeholder title on near-empty page",
			entry: model.CatalogEntry{Domain: "husk.test"},
			probe: model.ProbeResult{
				Reached:    true,
				StatusCode: 200,
				Title:      "Domain Coming Soon",
				BodyText:   "",
			},
			expected: model.StatusParked,
		},
		{
			name:     "substantial clean page is active",
			entry:    model.CatalogEntry{Domain: "healthy.test"},
			probe:    reachedProbe(substantial),
			expected: model.StatusActive,
		},
		{
			name:     "known-active override beats a failed probe",
			entry:    model.CatalogEntry{Domain: "ebay.com"},
			probe:    model.ProbeResult{Reached: false, FailureReason: "connection failed"},
			expected: model.StatusActive,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			status, confidence := c.Classify(tc.entry, tc.probe)
			if status != tc.expected {
				t.Errorf("Classify() = %q, expected %q", status, tc.expected)
			}
			if status != model.StatusUnknown && (confidence <= 0 || confidence > 1) {
				t.Errorf("confidence %v out of (0,1]", confidence)
			}
			if status == model.StatusUnknown && confidence != 0 {
				t.Errorf("deferred classification must carry zero confidence, got %v", confidence)
			}
		})
	}
}

// TestClassifyDeterminism tests that identical inputs always produce the
// same result.
func TestClassifyDeterminism(t *testing.T) {
	t.Parallel()

	c := New(DefaultRuleset())
	entry := model.CatalogEntry{Domain: "repeat.test", Years: []int{2004}}
	probe := reachedProbe("This domain is parked free")

	firstStatus, firstConf := c.Classify(entry, probe)
	for i := 0; i < 100; i++ {
		status, conf := c.Classify(entry, probe)
		if status != firstStatus || conf != firstConf {
			t.Fatalf("iteration %d: Classify() = (%q, %v), expected (%q, %v)",
				i, status, conf, firstStatus, firstConf)
		}
	}
}

// TestClassifyFixtureRuleset tests that rule tables are injectable.
func TestClassifyFixtureRuleset(t *testing.T) {
	t.Parallel()

	c := New(Ruleset{
		ParkedKeywords: []string{"custom parked marker"},
		ThinPageChars:  100,
	})

	status, _ := c.Classify(
		model.CatalogEntry{Domain: "fixture.test"},
		reachedProbe("custom parked marker"),
	)
	if status != model.StatusParked {
		t.Errorf("fixture ruleset not applied: got %q", status)
	}

	// Same marker above the fixture threshold: the thin gate holds.
	long := strings.Repeat("word ", 50) + "custom parked marker"
	status, _ = c.Classify(model.CatalogEntry{Domain: "fixture.test"}, reachedProbe(long))
	if status != model.StatusParked && status != model.StatusActive {
		t.Fatalf("unexpected status %q", status)
	}
	if status == model.StatusParked {
		t.Error("marker on a non-thin page must not classify as parked")
	}
}
