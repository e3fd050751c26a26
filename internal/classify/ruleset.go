package classify

// Ruleset holds the keyword tables and thresholds the classifier runs on.
// The defaults were calibrated against real parking and brokerage pages;
// they are configuration, not truths, and tests substitute smaller
// fixtures.
type Ruleset struct {
	// ParkedKeywords are phrases typical of registrar placeholder pages.
	// They only count on thin pages: real sites quote these phrases in
	// articles and ads often enough that the signal alone is worthless.
	ParkedKeywords []string

	// SalePhrases are explicit offers to sell the domain itself. These
	// are a strong signal and apply regardless of page size.
	SalePhrases []string

	// SalePlatforms are marketplace and broker names. Weak signal:
	// only counted on thin pages, where ad scripts cannot explain them.
	SalePlatforms []string

	// PlaceholderTitleMarkers flag near-empty pages whose title gives
	// the parking away.
	PlaceholderTitleMarkers []string

	// ThinPageChars is the stripped-text length below which a page is
	// "thin". Thinness is necessary but not sufficient for a parked
	// verdict: minimal landing pages and single-page apps are thin too.
	ThinPageChars int

	// PlaceholderChars is the stripped-text length below which the
	// title markers alone decide.
	PlaceholderChars int

	// KnownActive lists domains that block probes (geo-restrictions,
	// bot protection) but are known to be operating. They classify as
	// active no matter what the probe saw.
	KnownActive map[string]bool
}

// DefaultRuleset returns the production rule tables.
func DefaultRuleset() Ruleset {
	return Ruleset{
		ParkedKeywords: []string{
			"buy this domain",
			"this domain is for sale",
			"domain is for sale",
			"domain may be for sale",
			"is parked",
			"parked free",
			"parked by",
			"parked domain",
			"domain parking",
			"this webpage was generated",
			"is available for purchase",
			"make an offer",
			"purchase this domain",
			"acquire this domain",
			"domain for sale",
			"this domain name",
			"get this domain",
		},
		SalePhrases: []string{
			"buy this domain",
			"purchase this domain",
			"make an offer on this domain",
			"acquire this domain",
			"this domain is for sale",
			"domain is available for purchase",
			"domain may be for sale",
		},
		SalePlatforms: []string{
			"godaddy",
			"sedo",
			"afternic",
			"dan.com",
			"hugedomains",
			"namecheap",
			"flippa",
			"squadhelp",
			"brandpa",
			"atom.com",
			"undeveloped",
			"domainagents",
			"bodis",
		},
		PlaceholderTitleMarkers: []string{
			"parked",
			"for sale",
			"domain",
			"coming soon",
		},
		ThinPageChars:    2000,
		PlaceholderChars: 150,
		KnownActive: map[string]bool{
			"ebay.com":           true,
			"baidu.com":          true,
			"washingtonpost.com": true,
			"snap.com":           true,
			"about.com":          true,
			"realplayer.com":     true,
		},
	}
}
