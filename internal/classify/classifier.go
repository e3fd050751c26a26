package classify

import (
	"strings"

	"github.com/yomawari/domainscan/internal/model"
)

// Classifier applies the ordered status policy to probe results.
// It is stateless apart from its rule tables; Classify is a pure function
// of its inputs.
type Classifier struct {
	rules Ruleset
}

// New creates a Classifier with the given rules.
func New(rules Ruleset) *Classifier {
	return &Classifier{rules: rules}
}

// Classify decides a domain's status from its probe result.
//
// The policy is evaluated in order, first match wins:
//  1. known-active override
//  2. probe never reached the host -> StatusUnknown (defer to registry)
//  3. cross-domain redirect -> redirect, regardless of body content
//  4. explicit for-sale phrase, or a sale platform on a thin page -> for_sale
//  5. parked markers on a thin page (or a placeholder title on a
//     near-empty page) -> parked
//  6. anything else that answered -> active
//
// The thin-page gate is the load-bearing part: short text alone never
// produces a parked verdict, so lean-but-real sites stay active.
// The returned confidence is 0 only for the deferred StatusUnknown case.
func (c *Classifier) Classify(entry model.CatalogEntry, probe model.ProbeResult) (model.Status, float64) {
	if c.rules.KnownActive[entry.Domain] {
		return model.StatusActive, 1.0
	}

	if !probe.Reached {
		return model.StatusUnknown, 0
	}

	if probe.CrossDomainRedirect {
		return model.StatusRedirect, 0.95
	}

	body := probe.BodyText
	stripped := len(strings.ReplaceAll(body, " ", ""))
	thin := stripped < c.rules.ThinPageChars

	if containsAny(body, c.rules.SalePhrases) {
		return model.StatusForSale, 0.9
	}
	if thin && containsAny(body, c.rules.SalePlatforms) {
		return model.StatusForSale, 0.7
	}

	if thin && containsAny(body, c.rules.ParkedKeywords) {
		return model.StatusParked, 0.8
	}
	if stripped < c.rules.PlaceholderChars &&
		containsAny(strings.ToLower(probe.Title), c.rules.PlaceholderTitleMarkers) {
		return model.StatusParked, 0.7
	}

	if thin {
		// Reached, no markers: a lean but legitimate page.
		return model.StatusActive, 0.75
	}
	return model.StatusActive, 0.9
}

// containsAny reports whether text contains any of the needles.
func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
