package advisor

import (
	"context"
	"log/slog"

	"github.com/prompt508/prompt508/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor analyzes multiple texts concurrently.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding
// batch methods to Advisor because it keeps the Advisor focused on a single
// invocation, and batch policy (concurrency, streaming callbacks) can
// evolve without touching the pipeline.
type BatchProcessor struct {
	// advisor performs the per-text analysis. Advisors are safe for
	// concurrent use, so one instance serves the whole batch.
	advisor *Advisor

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Default is 10 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor backed by the given advisor.
func NewBatchProcessor(a *Advisor, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		advisor:     a,
		concurrency: 10,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// AnalyzeBatch scores multiple texts concurrently and returns the reports
// in input order.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it is simpler and errgroup handles the concurrency correctly.
// Each text gets its own goroutine, but only 'concurrency' goroutines run
// simultaneously. Results land in a pre-allocated slice by index, so no
// mutex is needed for ordering.
func (bp *BatchProcessor) AnalyzeBatch(ctx context.Context, texts []string) ([]*model.AnalysisReport, error) {
	bp.logger.Info("starting batch analysis",
		"total", len(texts),
		"concurrency", bp.concurrency,
	)

	reports := make([]*model.AnalysisReport, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, text := range texts {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			reports[i] = bp.advisor.Analyze(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}

// AnalyzeBatchWithCallback scores multiple texts concurrently, invoking the
// callback as each report completes. The callback receives the input index
// so streaming consumers can correlate results; it is called from worker
// goroutines, so it must be safe for concurrent use.
func (bp *BatchProcessor) AnalyzeBatchWithCallback(ctx context.Context, texts []string, callback func(report *model.AnalysisReport, index int)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, text := range texts {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			callback(bp.advisor.Analyze(text), i)
			return nil
		})
	}

	return g.Wait()
}
