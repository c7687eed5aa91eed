package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cagridemirci1MIS/codemix/internal/model"
)

// Renderer writes analysis reports as JSON, Markdown, and CSV.
// No rounding is applied to stored values; only the human-readable
// Markdown and stdout views format ratios to four decimals.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Code-Mixing Analysis: %s\n\n", report.Subject)
	fmt.Fprintf(&b, "- Source: %s\n", report.Source)
	fmt.Fprintf(&b, "- Analyzed: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- Lexicon: %s (%d words)\n", report.Options.LexiconSource, report.Options.LexiconWords)
	fmt.Fprintf(&b, "- Stemming: %v, case-sensitive: %v, min token length: %d\n\n",
		report.Options.Stemming, report.Options.CaseSensitive, report.Options.MinTokenLength)

	b.WriteString("## Corpus\n\n")
	fmt.Fprintf(&b, "| Texts | Skipped | Tokens | English | Mean CMR | Overall CMR |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %.4f | %.4f |\n\n",
		report.Corpus.Texts, report.Corpus.Skipped, report.Corpus.Tokens,
		report.Corpus.English, report.Corpus.MeanRatio, report.Corpus.OverallRatio)

	if len(report.Roots) > 0 {
		b.WriteString("## English Roots\n\n")
		b.WriteString("| Root | Count |\n|---|---|\n")
		for _, rc := range report.Roots {
			fmt.Fprintf(&b, "| %s | %d |\n", rc.Root, rc.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Per-Text Ratios\n\n")
	b.WriteString("| # | Ratio | Tokens | English | Status |\n|---|---|---|---|---|\n")
	for _, res := range report.Results {
		fmt.Fprintf(&b, "| %d | %.4f | %d | %d | %s |\n",
			res.Index, res.Ratio, res.Tokens, res.English, res.Status)
	}

	if r.includeFooter {
		b.WriteString("\n---\n_Generated by codemix. Ratios are English word tokens over all word tokens; empty texts yield 0.0._\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderCSV writes one row per text unit, in input order, with full
// float precision.
func (r *Renderer) RenderCSV(report *model.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "ratio", "tokens", "english", "excluded", "status"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, res := range report.Results {
		row := []string{
			strconv.Itoa(res.Index),
			strconv.FormatFloat(res.Ratio, 'f', -1, 64),
			strconv.Itoa(res.Tokens),
			strconv.Itoa(res.English),
			strconv.Itoa(res.Excluded),
			res.Status,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// RenderLLMMarkdown writes the generated summary to its own file.
func (r *Renderer) RenderLLMMarkdown(markdown, path string) error {
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("write LLM summary: %w", err)
	}
	return nil
}

// RenderSummary prints the corpus aggregates to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s\n", report.Subject)
	fmt.Printf("  Texts:        %d (skipped: %d)\n", report.Corpus.Texts, report.Corpus.Skipped)
	fmt.Printf("  Tokens:       %d (English: %d)\n", report.Corpus.Tokens, report.Corpus.English)
	fmt.Printf("  Mean CMR:     %.4f\n", report.Corpus.MeanRatio)
	fmt.Printf("  Overall CMR:  %.4f\n", report.Corpus.OverallRatio)
	if len(report.Roots) > 0 {
		top := report.Roots
		if len(top) > 5 {
			top = top[:5]
		}
		parts := make([]string, len(top))
		for i, rc := range top {
			parts[i] = fmt.Sprintf("%s(%d)", rc.Root, rc.Count)
		}
		fmt.Printf("  Top roots:    %s\n", strings.Join(parts, ", "))
	}
}

// trimMDSuffix strips a trailing .md so derived file names compose.
func trimMDSuffix(path string) string {
	return strings.TrimSuffix(path, ".md")
}
