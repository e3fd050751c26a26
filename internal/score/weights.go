package score

// Weights holds every tunable constant of the scoring model. The
// directions are fixed (older, shorter, broader is better); the
// magnitudes are calibration, exposed so tests can substitute fixtures.
type Weights struct {
	// Base is the starting score before any dimension contributes.
	Base float64

	// AgeVeteran is the bonus for domains first listed 20+ years ago;
	// AgeEstablished and AgeModerate cover the 10+ and 5+ year bands.
	AgeVeteran     float64
	AgeEstablished float64
	AgeModerate    float64

	// LenUltraShort rewards labels of 3 characters or fewer, stepping
	// down through LenShort (<=5) and LenConcise (<=8); LenLongPenalty
	// is subtracted at 15 characters and beyond.
	LenUltraShort  float64
	LenShort       float64
	LenConcise     float64
	LenLongPenalty float64

	// TLDCom is the flat .com bonus; TLDDesirable covers io, ai, and co.
	TLDCom       float64
	TLDDesirable float64

	// YearsBroad, YearsSolid, and YearsSome reward appearing in 5+, 3+,
	// and 2+ distinct top-list years.
	YearsBroad float64
	YearsSolid float64
	YearsSome  float64

	// KeywordPerMatch is added per high-value keyword in the label,
	// capped at KeywordCap.
	KeywordPerMatch float64
	KeywordCap      float64

	// BrandBonus rewards clean pronounceable labels (vowel ratio inside
	// [BrandVowelMin, BrandVowelMax], no hyphens or digits);
	// BrandPenalty is subtracted for hyphen- or digit-heavy labels.
	BrandBonus    float64
	BrandPenalty  float64
	BrandVowelMin float64
	BrandVowelMax float64

	// StatusAvailableBonus nudges registrable domains up;
	// StatusActivePenalty nudges occupied ones down.
	StatusAvailableBonus float64
	StatusActivePenalty  float64

	// HighValueKeywords is the curated lexicon of commercially loaded
	// terms (tech, finance, social, health, commerce).
	HighValueKeywords []string
}

// DefaultWeights returns the production scoring constants.
func DefaultWeights() Weights {
	return Weights{
		Base: 5.0,

		AgeVeteran:     2.0,
		AgeEstablished: 1.5,
		AgeModerate:    0.5,

		LenUltraShort:  2.0,
		LenShort:       1.5,
		LenConcise:     0.5,
		LenLongPenalty: 1.0,

		TLDCom:       1.0,
		TLDDesirable: 0.5,

		YearsBroad: 1.5,
		YearsSolid: 1.0,
		YearsSome:  0.5,

		KeywordPerMatch: 0.5,
		KeywordCap:      1.5,

		BrandBonus:    0.5,
		BrandPenalty:  0.5,
		BrandVowelMin: 0.2,
		BrandVowelMax: 0.6,

		StatusAvailableBonus: 0.5,
		StatusActivePenalty:  0.5,

		HighValueKeywords: []string{
			"tech", "ai", "cloud", "data", "cyber", "net", "web", "app", "code",
			"dev", "digital", "smart", "auto", "pay", "fin", "bank", "cash", "money",
			"crypto", "trade", "invest", "fund", "loan", "credit", "insurance",
			"social", "chat", "meet", "link", "share", "connect", "hub", "live",
			"stream", "video", "media", "news", "health", "med", "care", "fit",
			"shop", "store", "buy", "deal", "market", "sale",
			"game", "play", "bet", "win", "sport",
			"travel", "trip", "fly", "hotel", "book",
			"food", "eat", "cook", "recipe",
			"learn", "edu", "study", "course", "tutor",
			"job", "hire", "work", "career", "talent",
			"home", "house", "real", "rent", "property",
		},
	}
}
