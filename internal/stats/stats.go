// Package stats produces the exploratory summary a text dataset gets
// before annotation: per-record token and character counts, corpus-level
// descriptive statistics, missing-value and duplicate counts, and a
// ranked word-frequency listing.
package stats

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cagridemirci1MIS/codemix/internal/model"
	"github.com/cagridemirci1MIS/codemix/internal/tokenize"
)

// RecordStat is the per-record slice of the summary.
type RecordStat struct {
	Index     int  `json:"index"`
	Tokens    int  `json:"tokens"`
	Chars     int  `json:"chars"`
	Missing   bool `json:"missing"`
	Duplicate bool `json:"duplicate"`
}

// Describe is the descriptive-statistics set: count, mean, std, min,
// quartiles, max.
type Describe struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Summary is the complete exploratory report for one dataset column.
type Summary struct {
	Records     []RecordStat      `json:"records"`
	TokenCounts Describe          `json:"token_counts"`
	CharCounts  Describe          `json:"char_counts"`
	Missing     int               `json:"missing"`
	Duplicates  int               `json:"duplicates"`
	TopWords    []model.RootCount `json:"top_words,omitempty"`
}

// Summarize analyzes a column of text records. Missing means empty after
// trimming; duplicates are exact post-trim repeats beyond the first
// occurrence. topK limits the word-frequency listing (0 keeps all).
// Missing records are excluded from the descriptive statistics, matching
// how dropna-style summaries treat them.
func Summarize(records []string, topK int) Summary {
	s := Summary{Records: make([]RecordStat, len(records))}

	var tokenCounts, charCounts []float64
	wordFreq := make(map[string]int)
	seen := make(map[string]bool, len(records))

	for i, rec := range records {
		trimmed := strings.TrimSpace(rec)
		stat := RecordStat{Index: i}

		if trimmed == "" {
			stat.Missing = true
			s.Missing++
			s.Records[i] = stat
			continue
		}

		if seen[trimmed] {
			stat.Duplicate = true
			s.Duplicates++
		}
		seen[trimmed] = true

		words := tokenize.Words(trimmed)
		stat.Tokens = len(words)
		stat.Chars = utf8.RuneCountInString(trimmed)

		for _, w := range words {
			wordFreq[strings.ToLower(w)]++
		}

		tokenCounts = append(tokenCounts, float64(stat.Tokens))
		charCounts = append(charCounts, float64(stat.Chars))
		s.Records[i] = stat
	}

	s.TokenCounts = describe(tokenCounts)
	s.CharCounts = describe(charCounts)
	s.TopWords = rankWords(wordFreq, topK)
	return s
}

// describe computes the descriptive set over xs. Empty input returns the
// zero Describe. Std is the sample standard deviation (n-1), matching the
// describe() output the thesis tables were built from.
func describe(xs []float64) Describe {
	n := len(xs)
	if n == 0 {
		return Describe{}
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	var sum float64
	for _, x := range sorted {
		sum += x
	}
	mean := sum / float64(n)

	var sq float64
	for _, x := range sorted {
		d := x - mean
		sq += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(sq / float64(n-1))
	}

	return Describe{
		Count:  n,
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Q25:    quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q75:    quantile(sorted, 0.75),
		Max:    sorted[n-1],
	}
}

// quantile computes the q-th quantile of sorted data with linear
// interpolation between closest ranks (the pandas default).
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// rankWords orders the frequency map by count descending, ties broken
// alphabetically, truncated to topK (0 keeps all).
func rankWords(freq map[string]int, topK int) []model.RootCount {
	ranked := make([]model.RootCount, 0, len(freq))
	for w, n := range freq {
		ranked = append(ranked, model.RootCount{Root: w, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Root < ranked[j].Root
	})
	if topK > 0 && topK < len(ranked) {
		ranked = ranked[:topK]
	}
	return ranked
}
