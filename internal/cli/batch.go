package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/cagridemirci1MIS/codemix/internal/dataset"
	"github.com/cagridemirci1MIS/codemix/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	concurrency int
	batchDedupe bool
	batchColumn string
	batchJSON   string
	batchMD     string
	batchCSV    string
	batchRoots  bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Compute code-mixing ratios for a whole corpus in parallel",
	Long: `Batch processes a corpus concurrently:
- Read texts from a line file (one per line) or a CSV/JSON column
- Classify and aggregate with a configurable worker count
- Output order always matches input order, row for row
- A malformed record yields a skipped 0.0 ratio; the run never aborts

Example:
  codemix batch comments.txt
  codemix batch dataset.csv --column transcript --concurrency 8 --csv ratios.csv
  codemix batch comments.txt --concurrency 1 --llm openai`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers (1 = sequential)")
	batchCmd.Flags().StringVar(&batchColumn, "column", "text", "text column for CSV/JSON input")
	batchCmd.Flags().BoolVar(&batchDedupe, "dedupe", false, "drop duplicate lines in line-file input")

	batchCmd.Flags().StringVar(&batchJSON, "json", "report.json", "output JSON path")
	batchCmd.Flags().StringVar(&batchMD, "md", "", "output Markdown path (optional)")
	batchCmd.Flags().StringVar(&batchCSV, "csv", "", "output CSV path (optional)")
	batchCmd.Flags().BoolVar(&batchRoots, "roots", false, "include English-root frequencies in the report")

	addClassifierFlags(batchCmd)
	addLLMFlags(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx := context.Background()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Codemix Batch Processing\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	if llmEnabled {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	}
	fmt.Fprintf(os.Stderr, "\n")

	texts, err := loadBatchTexts(file)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Loaded %d texts\n", len(texts))

	analyzer, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return err
	}

	report, err := analyzer.AnalyzeCorpus(ctx, file, file, texts, batchRoots)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if err := analyzer.RenderReport(report, batchJSON, batchMD, batchCSV, verbose); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d texts\n", report.Corpus.Texts)
	fmt.Fprintf(os.Stderr, "  Skipped:   %d\n", report.Corpus.Skipped)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// loadBatchTexts reads the corpus: a dataset column for .csv/.json,
// otherwise a line file honoring --dedupe.
func loadBatchTexts(file string) ([]string, error) {
	lower := strings.ToLower(file)
	if strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".json") {
		table, err := dataset.Load(file)
		if err != nil {
			return nil, err
		}
		return table.Column(batchColumn)
	}
	return dataset.ReadLines(file, batchDedupe)
}
