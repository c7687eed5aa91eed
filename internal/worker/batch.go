package worker

import (
	"context"

	"github.com/cagridemirci1MIS/codemix/internal/model"
)

// Analyzer computes the code-mixing ratio for one text unit.
type Analyzer interface {
	AnalyzeText(ctx context.Context, text string) model.RatioResult
}

// RatioJob computes the ratio for one record.
type RatioJob struct {
	Idx      int
	Text     string
	Analyzer Analyzer
}

// Index returns the input position of the record.
func (j *RatioJob) Index() int { return j.Idx }

// Execute runs the analysis for the record.
func (j *RatioJob) Execute(ctx context.Context) Result {
	res := j.Analyzer.AnalyzeText(ctx, j.Text)
	res.Index = j.Idx
	return &RatioJobResult{Idx: j.Idx, Ratio: res}
}

// RatioJobResult wraps a RatioResult for the pool.
type RatioJobResult struct {
	Idx   int
	Ratio model.RatioResult
}

// Index returns the input position of the record.
func (r *RatioJobResult) Index() int { return r.Idx }

// Err always returns nil: per-record anomalies degrade to a skipped
// 0.0 ratio inside the analyzer instead of failing the job.
func (r *RatioJobResult) Err() error { return nil }

// BatchProcessor computes ratios for many records concurrently while
// preserving input order in the output.
type BatchProcessor struct {
	analyzer Analyzer
	workers  int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(analyzer Analyzer, workers int) *BatchProcessor {
	return &BatchProcessor{
		analyzer: analyzer,
		workers:  workers,
	}
}

// ProcessTexts computes one RatioResult per input text. The returned
// slice has the same length and ordering as texts; a malformed record
// yields a skipped 0.0 entry rather than aborting the batch.
func (b *BatchProcessor) ProcessTexts(ctx context.Context, texts []string) []model.RatioResult {
	if len(texts) == 0 {
		return []model.RatioResult{}
	}

	pool := NewPool(b.workers)
	pool.Start()

	for i, text := range texts {
		pool.Submit(&RatioJob{
			Idx:      i,
			Text:     text,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	out := make([]model.RatioResult, len(texts))
	for i := range out {
		// Records whose jobs were cancelled mid-run come back missing;
		// they get the skip sentinel so output length still matches input.
		out[i] = model.RatioResult{Index: i, Status: model.StatusSkipped}
	}
	for _, r := range results {
		rr := r.(*RatioJobResult)
		out[rr.Idx] = rr.Ratio
	}

	return out
}
