package model

import "runtime"

// Config is the full runtime configuration, assembled from defaults,
// ~/.codemix/config.yaml, CODEMIX_* environment variables, and CLI flags.
type Config struct {
	Classifier  ClassifierConfig  `yaml:"classifier" json:"classifier"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
}

// ClassifierConfig controls token classification.
type ClassifierConfig struct {
	// CaseSensitive disables lower-case folding before lexicon lookup.
	CaseSensitive bool `yaml:"case_sensitive" json:"case_sensitive"`

	// Stemming applies English (Porter2) stemming before lexicon lookup,
	// so inflected forms like "liking" match the entry "like".
	Stemming bool `yaml:"stemming" json:"stemming"`

	// MinTokenLength excludes shorter tokens from English counting.
	// Excluded tokens still count toward the token total.
	MinTokenLength int `yaml:"min_token_length" json:"min_token_length"`

	// Lexicon is an optional path to a word-list file (one word per line).
	// Empty means the embedded English lexicon.
	Lexicon string `yaml:"lexicon" json:"lexicon"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	// Workers is the batch worker count. 1 gives fully sequential runs.
	// Output order always matches input order regardless of this value.
	Workers int `yaml:"workers" json:"workers"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// LLMConfig configures the optional report summarizer.
type LLMConfig struct {
	// Provider name: "openai", "ollama", or "" (disabled).
	Provider  string `yaml:"provider" json:"provider"`
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"`
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`

	// Rate limiting for batch runs that summarize many reports.
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			CaseSensitive:  false,
			Stemming:       true,
			MinTokenLength: 2,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:          "",
			Timeout:           30,
			MaxTokens:         1000,
			RequestsPerSecond: 1,
			BurstSize:         2,
		},
	}
}
