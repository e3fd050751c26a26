package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/yomawari/domainscan/internal/model"
	"github.com/yomawari/domainscan/internal/registry"
	"github.com/yomawari/domainscan/internal/score"
)

// Prober fetches a domain's web page. Implementations never fail; they
// report unreachability inside the result.
type Prober interface {
	Probe(ctx context.Context, domain string) model.ProbeResult
}

// Classifier decides a status from probe evidence, returning
// model.StatusUnknown to defer to the registry.
type Classifier interface {
	Classify(entry model.CatalogEntry, probe model.ProbeResult) (model.Status, float64)
}

// Lookuper queries registration data. Implementations never fail; a
// silent registry yields Found=false.
type Lookuper interface {
	Lookup(ctx context.Context, domain string) model.RegistryRecord
}

// Scorer rates a finished record.
type Scorer interface {
	Score(record *model.DomainRecord, now time.Time) (int, map[string]float64)
}

// Evaluator runs the full evaluation sequence for one domain. It owns no
// state across domains, so a single Evaluator is safe to share between
// workers.
type Evaluator struct {
	prober     Prober
	classifier Classifier
	lookup     Lookuper
	scorer     Scorer
	logger     *slog.Logger

	// now supplies the reference time; injectable for deterministic tests.
	now func() time.Time
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EvaluatorOption {
	return func(e *Evaluator) {
		e.now = now
	}
}

// NewEvaluator wires the pipeline stages together.
func NewEvaluator(prober Prober, classifier Classifier, lookup Lookuper, scorer Scorer, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		prober:     prober,
		classifier: classifier,
		lookup:     lookup,
		scorer:     scorer,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs Probe -> Classify -> [Lookup] -> Score for one catalog
// entry and returns the finished record. The registry lookup runs if and
// only if the classifier deferred; a probe that answered is never second-
// guessed by WHOIS.
//
// Evaluate never fails: total evidence loss (probe dead, registry silent)
// degrades to an available verdict with low confidence.
func (e *Evaluator) Evaluate(ctx context.Context, entry model.CatalogEntry) *model.DomainRecord {
	record := model.NewDomainRecord(entry)

	probe := e.prober.Probe(ctx, entry.Domain)
	record.SetHTTPInfo(probe)

	status, confidence := e.classifier.Classify(entry, probe)
	if status == model.StatusUnknown {
		e.logger.Debug("probe inconclusive, falling back to registry",
			"domain", entry.Domain,
			"reason", probe.FailureReason,
		)
		reg := e.lookup.Lookup(ctx, entry.Domain)
		record.SetWhoisInfo(reg)
		status, confidence = registry.Refine(reg, e.now())
	}

	record.Status = status
	record.Confidence = confidence
	record.Score, record.ScoreBreakdown = e.scorer.Score(record, e.now())
	record.EstimatedValue = score.EstimateValue(record.Score, record.Status)
	record.CheckedAt = e.now().UTC()

	e.logger.Debug("domain evaluated",
		"domain", entry.Domain,
		"status", record.Status,
		"score", record.Score,
	)

	return record
}
