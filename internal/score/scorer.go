package score

import (
	"math"
	"strings"
	"time"

	"github.com/yomawari/domainscan/internal/model"
)

// Breakdown dimension names. These appear verbatim in the report's
// scoreBreakdown object, so they are part of the output contract.
const (
	DimAge      = "age"
	DimLength   = "length"
	DimTLD      = "tld"
	DimYears    = "popularity"
	DimKeywords = "keywords"
	DimBrand    = "brandability"
	DimStatus   = "status"
)

// Scorer computes acquisition-worthiness scores.
type Scorer struct {
	weights Weights
}

// New creates a Scorer with the given weights.
func New(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score rates a domain record 1-10 and returns the per-dimension
// breakdown. It is a pure function of the record's catalog metadata,
// status, and the supplied reference time: the same record scores
// identically on every invocation.
//
// Age derives from the earliest top-list year in the catalog, not from
// registry data, so a domain whose WHOIS never ran still scores fully.
func (s *Scorer) Score(record *model.DomainRecord, now time.Time) (int, map[string]float64) {
	w := s.weights
	breakdown := make(map[string]float64)
	total := w.Base

	label := domainLabel(record.Domain)

	// Age: older first-listing, higher value.
	if earliest := earliestYear(record.Years); earliest > 0 {
		age := now.Year() - earliest
		var contribution float64
		switch {
		case age >= 20:
			contribution = w.AgeVeteran
		case age >= 10:
			contribution = w.AgeEstablished
		case age >= 5:
			contribution = w.AgeModerate
		}
		if contribution != 0 {
			breakdown[DimAge] = contribution
			total += contribution
		}
	}

	// Length: shorter labels are worth more.
	var lengthContribution float64
	switch n := len(label); {
	case n == 0:
	case n <= 3:
		lengthContribution = w.LenUltraShort
	case n <= 5:
		lengthContribution = w.LenShort
	case n <= 8:
		lengthContribution = w.LenConcise
	case n >= 15:
		lengthContribution = -w.LenLongPenalty
	}
	if lengthContribution != 0 {
		breakdown[DimLength] = lengthContribution
		total += lengthContribution
	}

	// TLD premium.
	var tldContribution float64
	switch {
	case strings.HasSuffix(record.Domain, ".com"):
		tldContribution = w.TLDCom
	case strings.HasSuffix(record.Domain, ".io"),
		strings.HasSuffix(record.Domain, ".ai"),
		strings.HasSuffix(record.Domain, ".co"):
		tldContribution = w.TLDDesirable
	}
	if tldContribution != 0 {
		breakdown[DimTLD] = tldContribution
		total += tldContribution
	}

	// Popularity breadth: distinct top-list years.
	var yearsContribution float64
	switch n := len(record.Years); {
	case n >= 5:
		yearsContribution = w.YearsBroad
	case n >= 3:
		yearsContribution = w.YearsSolid
	case n >= 2:
		yearsContribution = w.YearsSome
	}
	if yearsContribution != 0 {
		breakdown[DimYears] = yearsContribution
		total += yearsContribution
	}

	// High-value keyword presence.
	if matches := keywordMatches(label, w.HighValueKeywords); matches > 0 {
		contribution := math.Min(float64(matches)*w.KeywordPerMatch, w.KeywordCap)
		breakdown[DimKeywords] = contribution
		total += contribution
	}

	// Brandability: pronounceable, clean labels.
	if brandContribution := s.brandability(label); brandContribution != 0 {
		breakdown[DimBrand] = brandContribution
		total += brandContribution
	}

	// Status adjustment: registrable is an opportunity, occupied is not.
	var statusContribution float64
	switch record.Status {
	case model.StatusAvailable:
		statusContribution = w.StatusAvailableBonus
	case model.StatusActive:
		statusContribution = -w.StatusActivePenalty
	}
	if statusContribution != 0 {
		breakdown[DimStatus] = statusContribution
		total += statusContribution
	}

	final := int(math.Round(total))
	if final < 1 {
		final = 1
	}
	if final > 10 {
		final = 10
	}
	return final, breakdown
}

// EstimateValue maps a score to a rough market value band. Available
// domains cost only a registration fee regardless of score.
func EstimateValue(score int, status model.Status) string {
	if status == model.StatusAvailable {
		return "$10-$15 (registration cost)"
	}

	bands := map[int]string{
		1:  "$0-$100",
		2:  "$100-$500",
		3:  "$500-$1,000",
		4:  "$1,000-$2,500",
		5:  "$2,500-$5,000",
		6:  "$5,000-$10,000",
		7:  "$10,000-$25,000",
		8:  "$25,000-$50,000",
		9:  "$50,000-$100,000",
		10: "$100,000+",
	}
	if band, ok := bands[score]; ok {
		return band
	}
	return "$1,000-$5,000"
}

// brandability scores how pronounceable and clean the label is.
func (s *Scorer) brandability(label string) float64 {
	if label == "" {
		return 0
	}
	w := s.weights

	var vowels, hyphens, digits int
	for _, r := range label {
		switch {
		case strings.ContainsRune("aeiou", r):
			vowels++
		case r == '-':
			hyphens++
		case r >= '0' && r <= '9':
			digits++
		}
	}
	vowelRatio := float64(vowels) / float64(len(label))

	switch {
	case vowelRatio >= w.BrandVowelMin && vowelRatio <= w.BrandVowelMax && hyphens == 0 && digits == 0:
		return w.BrandBonus
	case hyphens >= 2 || digits >= 3:
		return -w.BrandPenalty
	}
	return 0
}

// domainLabel returns the first label of the domain, lowercased.
func domainLabel(domain string) string {
	label, _, _ := strings.Cut(strings.ToLower(domain), ".")
	return label
}

// earliestYear returns the smallest year, or zero for an empty set.
func earliestYear(years []int) int {
	if len(years) == 0 {
		return 0
	}
	earliest := years[0]
	for _, y := range years[1:] {
		if y < earliest {
			earliest = y
		}
	}
	return earliest
}

// keywordMatches counts lexicon terms contained in the label.
func keywordMatches(label string, lexicon []string) int {
	var matches int
	for _, kw := range lexicon {
		if strings.Contains(label, kw) {
			matches++
		}
	}
	return matches
}
