// Package ratio computes the code-mixing ratio (CMR): the fraction of
// word tokens in a text classified as English-origin.
package ratio

import (
	"github.com/cagridemirci1MIS/codemix/internal/classify"
	"github.com/cagridemirci1MIS/codemix/internal/model"
	"github.com/cagridemirci1MIS/codemix/internal/tokenize"
)

// Aggregator turns per-token classifications into per-text ratios.
// A pure transformation: no state survives between calls.
type Aggregator struct {
	classifier *classify.Classifier
}

// New creates an aggregator over the given classifier.
func New(c *classify.Classifier) *Aggregator {
	return &Aggregator{classifier: c}
}

// Ratio computes the CMR for one text unit. A unit with zero word tokens
// yields 0.0. Excluded tokens stay in the denominator.
func (a *Aggregator) Ratio(text string) model.RatioResult {
	words := tokenize.Words(text)

	res := model.RatioResult{
		Tokens: len(words),
		Status: model.StatusOK,
	}

	for _, w := range words {
		switch a.classifier.Classify(w) {
		case model.English:
			res.English++
		case model.Excluded:
			res.Excluded++
		}
	}

	if res.Tokens > 0 {
		res.Ratio = float64(res.English) / float64(res.Tokens)
	}
	return res
}

// Batch applies Ratio in order across texts. The output has the same
// length and ordering as the input; no unit can abort the run. The
// worker package provides the concurrent equivalent.
func (a *Aggregator) Batch(texts []string) []model.RatioResult {
	results := make([]model.RatioResult, len(texts))
	for i, text := range texts {
		results[i] = a.Ratio(text)
		results[i].Index = i
	}
	return results
}

// Stats folds a result sequence into corpus-level aggregates. MeanRatio
// averages per-text ratios; OverallRatio pools tokens corpus-wide. The
// two differ whenever text lengths vary, and the thesis reports both.
func Stats(results []model.RatioResult) model.CorpusStats {
	var s model.CorpusStats
	var sum float64

	for _, r := range results {
		s.Texts++
		if r.Status == model.StatusSkipped {
			s.Skipped++
		}
		s.Tokens += r.Tokens
		s.English += r.English
		sum += r.Ratio
	}

	if s.Texts > 0 {
		s.MeanRatio = sum / float64(s.Texts)
	}
	if s.Tokens > 0 {
		s.OverallRatio = float64(s.English) / float64(s.Tokens)
	}
	return s
}
