package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yomawari/domainscan/internal/model"
)

// Batch fans the per-domain evaluation out across a bounded worker pool.
//
// Design decision: We use errgroup.SetLimit rather than a hand-rolled
// worker pool because errgroup handles the concurrency cap and context
// propagation correctly with far less code. Each domain gets its own
// goroutine, but only `workers` of them run simultaneously.
type Batch struct {
	evaluator *Evaluator
	workers   int
	logger    *slog.Logger
}

// ProgressFunc is called after each domain completes. It runs from the
// worker goroutine that finished the domain, serialized by the Batch, so
// callers need no locking of their own.
type ProgressFunc func(completed, total int, record *model.DomainRecord)

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithWorkers sets the concurrent worker count. Values below one are
// ignored.
func WithWorkers(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.workers = n
		}
	}
}

// WithBatchLogger sets a custom logger.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *Batch) {
		b.logger = logger
	}
}

// NewBatch creates a batch runner around an evaluator.
func NewBatch(evaluator *Evaluator, opts ...BatchOption) *Batch {
	b := &Batch{
		evaluator: evaluator,
		workers:   10,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run evaluates every catalog entry and returns the records in entry
// order. Per-domain failures are folded into their records and never
// stop the run; the only error is context cancellation.
//
// Records land in a pre-allocated, index-addressed slice, so workers
// never contend on the collection itself. Progress reporting is the one
// synchronized side effect.
func (b *Batch) Run(ctx context.Context, entries []model.CatalogEntry, progress ProgressFunc) ([]*model.DomainRecord, error) {
	total := len(entries)
	b.logger.Info("starting scan",
		"domains", total,
		"workers", b.workers,
	)
	startTime := time.Now()

	results := make([]*model.DomainRecord, total)
	var completed atomic.Int64
	var progressMu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			record := b.evaluator.Evaluate(ctx, entry)
			results[i] = record

			done := int(completed.Add(1))
			b.logger.Debug("progress",
				"completed", done,
				"total", total,
				"domain", entry.Domain,
			)
			if progress != nil {
				progressMu.Lock()
				progress(done, total, record)
				progressMu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.logger.Info("scan complete",
		"domains", total,
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)
	return results, nil
}
