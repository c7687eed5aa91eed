// Package pipeline orchestrates a complete corpus analysis: ingest →
// tokenize → classify → aggregate → report, with optional root
// frequencies and an optional LLM summary bolted on after the numbers
// are final.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cagridemirci1MIS/codemix/internal/classify"
	"github.com/cagridemirci1MIS/codemix/internal/dataset"
	"github.com/cagridemirci1MIS/codemix/internal/lexicon"
	"github.com/cagridemirci1MIS/codemix/internal/llm"
	"github.com/cagridemirci1MIS/codemix/internal/model"
	"github.com/cagridemirci1MIS/codemix/internal/ratio"
	"github.com/cagridemirci1MIS/codemix/internal/roots"
	"github.com/cagridemirci1MIS/codemix/internal/worker"
)

// Analyzer wires the classifier, aggregator, and extractor together for
// one configuration. Construction fails only on a missing/empty lexicon
// or a misconfigured LLM provider.
type Analyzer struct {
	classifier *classify.Classifier
	aggregator *ratio.Aggregator
	extractor  *roots.Extractor
	renderer   *Renderer
	summarizer *llm.Summarizer // nil if disabled
	config     *model.Config
	lexSource  string
}

// NewAnalyzer creates an analyzer from the given configuration.
func NewAnalyzer(cfg *model.Config) (*Analyzer, error) {
	lex, err := loadLexicon(cfg.Classifier.Lexicon)
	if err != nil {
		return nil, err
	}

	classifier, err := classify.New(lex, cfg.Classifier)
	if err != nil {
		return nil, err
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			return nil, fmt.Errorf("init LLM provider: %w", err)
		}
		summarizer = s
	}

	return &Analyzer{
		classifier: classifier,
		aggregator: ratio.New(classifier),
		extractor:  roots.New(classifier),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
		config:     cfg,
		lexSource:  lex.Source(),
	}, nil
}

func loadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(path)
}

// Classifier exposes the underlying classifier for per-token inspection.
func (a *Analyzer) Classifier() *classify.Classifier {
	return a.classifier
}

// Extractor exposes the root extractor.
func (a *Analyzer) Extractor() *roots.Extractor {
	return a.extractor
}

// AnalyzeText computes the ratio for one text unit. Markup is stripped
// first.
func (a *Analyzer) AnalyzeText(_ context.Context, text string) model.RatioResult {
	return a.aggregator.Ratio(dataset.StripMarkup(text))
}

// AnalyzeCorpus runs the full analysis over a corpus. Workers > 1 uses
// the order-preserving pool; 1 runs sequentially. withRoots adds the
// ranked English-root listing to the report.
func (a *Analyzer) AnalyzeCorpus(ctx context.Context, subject, source string, texts []string, withRoots bool) (*model.Report, error) {
	var results []model.RatioResult
	if a.config.Concurrency.Workers > 1 {
		processor := worker.NewBatchProcessor(a, a.config.Concurrency.Workers)
		results = processor.ProcessTexts(ctx, texts)
	} else {
		results = make([]model.RatioResult, len(texts))
		for i, text := range texts {
			results[i] = a.AnalyzeText(ctx, text)
			results[i].Index = i
		}
	}

	report := &model.Report{
		Subject:    subject,
		Source:     source,
		AnalyzedAt: time.Now().UTC(),
		Options: model.OptionsSummary{
			CaseSensitive:  a.config.Classifier.CaseSensitive,
			Stemming:       a.config.Classifier.Stemming,
			MinTokenLength: a.config.Classifier.MinTokenLength,
			LexiconWords:   a.classifier.Lexicon().Len(),
			LexiconSource:  a.lexSource,
		},
		Results: results,
		Corpus:  ratio.Stats(results),
	}

	if withRoots {
		stripped := make([]string, len(texts))
		for i, t := range texts {
			stripped[i] = dataset.StripMarkup(t)
		}
		report.Roots = a.extractor.Frequencies(stripped)
	}

	// Generate LLM summary if enabled (AFTER aggregation, never affects numbers)
	if a.summarizer.IsEnabled() {
		llmSummary, err := a.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			// Don't fail the analysis, just warn
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if llmSummary != nil {
			report.LLM = llmSummary
		}
	}

	return report, nil
}

// RenderReport writes the report to the requested outputs and prints the
// stdout summary.
func (a *Analyzer) RenderReport(report *model.Report, jsonPath, mdPath, csvPath string, verbose bool) error {
	if jsonPath != "" {
		if err := a.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := a.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if csvPath != "" {
		if err := a.renderer.RenderCSV(report, csvPath); err != nil {
			return fmt.Errorf("render CSV: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote CSV: %s\n", csvPath)
		}
	}

	// LLM summary goes to its own file, clearly separated from results.
	if report.LLM != nil && report.LLM.Enabled && mdPath != "" {
		llmMdPath := trimMDSuffix(mdPath) + ".llm.md"
		if err := a.renderer.RenderLLMMarkdown(llm.RenderSeparateMarkdown(report.LLM), llmMdPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to write LLM summary: %v\n", err)
		} else if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote LLM Summary: %s\n", llmMdPath)
		}
	}

	a.renderer.RenderSummary(report)
	return nil
}
