package llm

import (
	"context"
	"fmt"

	"github.com/cagridemirci1MIS/codemix/internal/model"
	"github.com/cagridemirci1MIS/codemix/internal/worker"
)

// Summarizer wraps a provider and produces the optional LLMSummary
// attached to reports. Summaries are generated after every number is
// final and never feed back into them. Calls are rate-limited so batch
// runs over large corpora stay within API budgets.
type Summarizer struct {
	provider Provider
	config   Config
	limiter  *worker.Limiter
}

// NewSummarizer creates a summarizer for the configured provider.
// Returns an error when the provider name is unknown or misconfigured;
// an empty provider name yields a disabled summarizer.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Summarizer{
		provider: provider,
		config:   config,
		limiter:  worker.NewLimiter(rps, config.BurstSize),
	}, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary produces the LLMSummary for a finished report.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.Report) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	if err := s.limiter.Wait(ctx, s.provider.Name()); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{Report: report})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	summary := &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}
	if resp.Summary == "" {
		summary.Warnings = append(summary.Warnings, "provider returned an empty summary")
	}
	return summary, nil
}

// RenderSeparateMarkdown renders the summary as a standalone Markdown
// document, clearly labeled as generated so it cannot be mistaken for a
// computed result.
func RenderSeparateMarkdown(s *model.LLMSummary) string {
	if s == nil || !s.Enabled {
		return ""
	}

	md := "# LLM Summary (generated)\n\n"
	md += fmt.Sprintf("_Provider: %s, model: %s. This text was generated after the analysis finished and has no effect on any computed figure._\n\n", s.Provider, s.Model)
	md += s.SummaryMD + "\n"

	for _, w := range s.Warnings {
		md += fmt.Sprintf("\n> Warning: %s\n", w)
	}
	return md
}
