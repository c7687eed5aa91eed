package llm

import (
	"context"
	"fmt"

	"github.com/cagridemirci1MIS/codemix/internal/model"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a plain-language summary of an analysis report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for LLM summarization.
type SummarizeRequest struct {
	// Report holds the finished analysis. Every number in it is final
	// before the request is built; the summary can only describe them.
	Report model.Report

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output.
type SummarizeResponse struct {
	// Summary is the generated summary text
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration.
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Rate limiting across a batch run
	RequestsPerSecond float64
	BurstSize         int
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:          mc.Provider,
		Model:             mc.Model,
		APIKey:            mc.APIKey,
		BaseURL:           mc.BaseURL,
		Timeout:           mc.Timeout,
		MaxTokens:         mc.MaxTokens,
		RequestsPerSecond: mc.RequestsPerSecond,
		BurstSize:         mc.BurstSize,
	}
}

// BuildPrompt constructs the default summarization prompt. The report's
// numbers are injected verbatim; the model is instructed to describe
// them, never to recompute or invent figures.
func BuildPrompt(report model.Report) string {
	prompt := fmt.Sprintf(`You are summarizing a code-mixing analysis of a bilingual (Turkish-English) social-media corpus for a linguistics thesis appendix.

RULES:
1. Describe ONLY the figures given below. Do not recompute, extrapolate, or invent numbers.
2. The code-mixing ratio (CMR) is the fraction of word tokens classified as English-origin.
3. If a figure is zero or missing, say so plainly.
4. Keep an academic register; no marketing language.

Analysis:
- Subject: %s
- Texts analyzed: %d (skipped: %d)
- Total word tokens: %d
- English-origin tokens: %d
- Mean per-text CMR: %.4f
- Corpus-wide CMR: %.4f
`, report.Subject, report.Corpus.Texts, report.Corpus.Skipped,
		report.Corpus.Tokens, report.Corpus.English,
		report.Corpus.MeanRatio, report.Corpus.OverallRatio)

	if len(report.Roots) > 0 {
		prompt += "\nMost frequent English roots:\n"
		for i, rc := range report.Roots {
			if i >= 10 {
				break
			}
			prompt += fmt.Sprintf("- %s (%d)\n", rc.Root, rc.Count)
		}
	}

	prompt += "\nProvide a 3-4 sentence summary of the code-mixing behavior these figures show."

	return prompt
}

// systemPrompt is shared by all providers.
const systemPrompt = "You are a careful assistant that summarizes code-mixing analysis reports. You describe computed figures; you never alter or invent them."
