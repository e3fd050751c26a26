package model

import (
	"sort"
	"time"
)

// CatalogEntry is one immutable input from the domain catalog: a domain
// name and the set of years it appeared in a top-sites list.
type CatalogEntry struct {
	// Domain is the registrable domain name, lowercase.
	Domain string

	// Years lists the distinct years the domain appeared in top lists,
	// sorted ascending.
	Years []int
}

// EarliestYear returns the first year the domain appeared, or zero if the
// entry carries no years.
func (e CatalogEntry) EarliestYear() int {
	if len(e.Years) == 0 {
		return 0
	}
	return e.Years[0]
}

// ProbeResult is the outcome of one HTTP probe attempt against a domain.
// It is transient: produced by the prober, consumed by the classifier,
// then folded into the domain record.
type ProbeResult struct {
	// Reached is true if any HTTP response was received on either scheme.
	Reached bool

	// FinalURL is the URL after following redirects. Empty when unreached.
	FinalURL string

	// StatusCode is the final HTTP status code, or zero when unreached.
	StatusCode int

	// Title is the page title, truncated and trimmed.
	Title string

	// BodyText is the extracted visible text (title and body, markup and
	// scripts discarded), lowercased and truncated for analysis.
	BodyText string

	// CrossDomainRedirect is true when the final registrable domain
	// differs from the requested one.
	CrossDomainRedirect bool

	// FailureReason describes why the probe failed when Reached is false.
	FailureReason string
}

// RegistryRecord is the outcome of one WHOIS lookup.
// Found=false means no registration record exists at all (or the lookup
// persistently failed, which the scan treats the same way).
type RegistryRecord struct {
	// Found is true when a registration record exists.
	Found bool

	// Registrar is the sponsoring registrar name, if disclosed.
	Registrar string

	// CreatedOn is the registration date, nil if absent.
	CreatedOn *time.Time

	// ExpiresOn is the registration expiry date, nil if absent.
	ExpiresOn *time.Time

	// NameServers lists the delegated name servers, lowercased, in
	// registry order.
	NameServers []string

	// Registrant is the registrant organization or name, if disclosed.
	Registrant string
}

// HTTPInfo is the serialized subset of a probe result carried in the
// report. Nil when the domain was never reached over HTTP.
type HTTPInfo struct {
	FinalURL   string `json:"finalUrl"`
	StatusCode int    `json:"statusCode"`
	Redirected bool   `json:"redirected"`
}

// WhoisInfo is the serialized subset of a registry record carried in the
// report. Nil when no lookup ran or nothing was found.
type WhoisInfo struct {
	Registrar   string   `json:"registrar,omitempty"`
	CreatedOn   string   `json:"createdOn,omitempty"`
	ExpiresOn   string   `json:"expiresOn,omitempty"`
	NameServers []string `json:"nameServers,omitempty"`
}

// DomainRecord is the persisted unit of output: everything the scan
// learned about one domain. Records are created once per scan and never
// mutated after scoring completes.
type DomainRecord struct {
	// Domain is the scanned domain name.
	Domain string `json:"domain"`

	// Years lists the catalog years the domain appeared in.
	Years []int `json:"years"`

	// Status is exactly one of the six report statuses.
	Status Status `json:"status"`

	// Confidence expresses how certain the classification is, in (0,1].
	Confidence float64 `json:"confidence"`

	// Score is the acquisition-worthiness score in [1,10].
	Score int `json:"score"`

	// ScoreBreakdown maps each scoring dimension to its contribution.
	ScoreBreakdown map[string]float64 `json:"scoreBreakdown"`

	// EstimatedValue is a rough market value band derived from the score.
	EstimatedValue string `json:"estimatedValue,omitempty"`

	// PageTitle is the fetched page title, when the probe reached a page.
	PageTitle string `json:"pageTitle,omitempty"`

	// HTTP carries probe evidence, nil when the domain was unreachable.
	HTTP *HTTPInfo `json:"httpInfo"`

	// Whois carries registry evidence, nil when no lookup contributed.
	Whois *WhoisInfo `json:"whoisInfo"`

	// CheckedAt is when this domain's evaluation finished.
	CheckedAt time.Time `json:"checkedAt"`
}

// NewDomainRecord creates a record for a catalog entry with evaluation
// fields still unset.
func NewDomainRecord(entry CatalogEntry) *DomainRecord {
	return &DomainRecord{
		Domain: entry.Domain,
		Years:  entry.Years,
		Status: StatusUnknown,
	}
}

// SetHTTPInfo folds a successful probe result into the record.
func (r *DomainRecord) SetHTTPInfo(probe ProbeResult) {
	if !probe.Reached {
		return
	}
	r.PageTitle = probe.Title
	r.HTTP = &HTTPInfo{
		FinalURL:   probe.FinalURL,
		StatusCode: probe.StatusCode,
		Redirected: probe.CrossDomainRedirect,
	}
}

// SetWhoisInfo folds a registry record into the record.
// Dates serialize as ISO dates; nothing is stored when the registry had
// no record at all.
func (r *DomainRecord) SetWhoisInfo(reg RegistryRecord) {
	if !reg.Found {
		return
	}
	info := &WhoisInfo{
		Registrar:   reg.Registrar,
		NameServers: reg.NameServers,
	}
	if reg.CreatedOn != nil {
		info.CreatedOn = reg.CreatedOn.Format("2006-01-02")
	}
	if reg.ExpiresOn != nil {
		info.ExpiresOn = reg.ExpiresOn.Format("2006-01-02")
	}
	r.Whois = info
}

// Report is the durable artifact of one scan run: run metadata plus the
// full collection of domain records.
type Report struct {
	// GeneratedAt is when the report was assembled.
	GeneratedAt time.Time `json:"generatedAt"`

	// TotalDomains is the number of records in Results.
	TotalDomains int `json:"totalDomains"`

	// WorkerCount is the concurrency the scan ran with.
	WorkerCount int `json:"workerCount"`

	// Summary counts records per status.
	Summary map[string]int `json:"summary"`

	// Results holds one record per scanned domain, sorted by score
	// descending then domain name. Ordering is cosmetic; the record set
	// is the contract.
	Results []*DomainRecord `json:"results"`
}

// NewReport assembles a report from finished records: it fills metadata,
// builds the status summary, and applies the presentation sort.
func NewReport(records []*DomainRecord, workerCount int) *Report {
	sorted := make([]*DomainRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Domain < sorted[j].Domain
	})

	summary := make(map[string]int, len(AllStatuses))
	for _, s := range AllStatuses {
		summary[s.String()] = 0
	}
	for _, r := range sorted {
		summary[r.Status.String()]++
	}

	return &Report{
		GeneratedAt:  time.Now().UTC(),
		TotalDomains: len(sorted),
		WorkerCount:  workerCount,
		Summary:      summary,
		Results:      sorted,
	}
}

// Acquirable returns how many records look acquirable: for sale, expired,
// or available for registration.
func (rep *Report) Acquirable() int {
	return rep.Summary[StatusForSale.String()] +
		rep.Summary[StatusExpired.String()] +
		rep.Summary[StatusAvailable.String()]
}
