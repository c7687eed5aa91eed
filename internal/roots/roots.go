// Package roots extracts the English word roots appearing in code-mixed
// text, including the stems of hybrid forms like like'lamak and
// save'ledim, and counts their frequencies across a corpus.
package roots

import (
	"sort"

	"github.com/cagridemirci1MIS/codemix/internal/classify"
	"github.com/cagridemirci1MIS/codemix/internal/model"
	"github.com/cagridemirci1MIS/codemix/internal/tokenize"
)

// Extractor lists English roots found by the classifier.
type Extractor struct {
	classifier *classify.Classifier
}

// New creates an extractor over the given classifier.
func New(c *classify.Classifier) *Extractor {
	return &Extractor{classifier: c}
}

// Extract returns the English roots of text in token order. Hybrid words
// contribute their decomposed stem; stemmed matches contribute the stem.
// Empty input returns nil.
func (e *Extractor) Extract(text string) []string {
	var out []string
	for _, w := range tokenize.Words(text) {
		tc := e.classifier.ClassifyToken(w)
		if tc.Class == model.English && tc.Root != "" {
			out = append(out, tc.Root)
		}
	}
	return out
}

// Frequencies counts roots across a corpus and returns them ranked by
// count descending, ties broken alphabetically, so repeated runs over the
// same corpus list roots in the same order.
func (e *Extractor) Frequencies(texts []string) []model.RootCount {
	counts := make(map[string]int)
	for _, text := range texts {
		for _, root := range e.Extract(text) {
			counts[root]++
		}
	}

	ranked := make([]model.RootCount, 0, len(counts))
	for root, n := range counts {
		ranked = append(ranked, model.RootCount{Root: root, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Root < ranked[j].Root
	})
	return ranked
}

// Top returns the first k entries of a ranked listing, or all of them
// when k <= 0 or exceeds the listing.
func Top(ranked []model.RootCount, k int) []model.RootCount {
	if k <= 0 || k >= len(ranked) {
		return ranked
	}
	return ranked[:k]
}
