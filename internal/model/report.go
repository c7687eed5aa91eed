package model

import "time"

// RatioStatus records how a batch unit was handled.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
)

// RatioResult is the code-mixing ratio for one text unit.
// Ratio is always in [0, 1]; a unit with zero tokens yields 0.0 rather
// than a division error. Status is "skipped" when a malformed unit was
// substituted with the zero ratio during a batch run.
type RatioResult struct {
	Index    int     `json:"index"`
	Ratio    float64 `json:"ratio"`
	Tokens   int     `json:"tokens"`
	English  int     `json:"english"`
	Excluded int     `json:"excluded,omitempty"`
	Status   string  `json:"status"`
}

// RootCount is one entry in a root frequency listing.
type RootCount struct {
	Root  string `json:"root"`
	Count int    `json:"count"`
}

// CorpusStats aggregates per-unit results over a whole corpus.
type CorpusStats struct {
	Texts        int     `json:"texts"`
	Skipped      int     `json:"skipped"`
	Tokens       int     `json:"tokens"`
	English      int     `json:"english"`
	MeanRatio    float64 `json:"mean_ratio"`
	OverallRatio float64 `json:"overall_ratio"` // english tokens / all tokens, corpus-wide
}

// Report is the complete analysis output for one corpus run.
type Report struct {
	Subject    string         `json:"subject"`
	Source     string         `json:"source"`
	AnalyzedAt time.Time      `json:"analyzed_at"`
	Options    OptionsSummary `json:"options"`
	Results    []RatioResult  `json:"results"`
	Corpus     CorpusStats    `json:"corpus"`
	Roots      []RootCount    `json:"roots,omitempty"`

	// LLM holds the optional generated summary. It is produced after all
	// numbers are final and never feeds back into them.
	LLM *LLMSummary `json:"llm,omitempty"`
}

// OptionsSummary records the classifier configuration a report was
// produced with, so thesis runs stay reproducible.
type OptionsSummary struct {
	CaseSensitive  bool   `json:"case_sensitive"`
	Stemming       bool   `json:"stemming"`
	MinTokenLength int    `json:"min_token_length"`
	LexiconWords   int    `json:"lexicon_words"`
	LexiconSource  string `json:"lexicon_source"`
}

// LLMSummary contains the optional LLM-generated summary.
// It never affects any computed ratio or statistic.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
