package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cagridemirci1MIS/codemix/internal/dataset"
	"github.com/cagridemirci1MIS/codemix/internal/model"
	"github.com/cagridemirci1MIS/codemix/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON       string
	outMD         string
	outCSV        string
	inputFile     string
	inputColumn   string
	lexiconPath   string
	noStemming    bool
	caseSensitive bool
	minTokenLen   int
	withRoots     bool
	llmEnabled    bool
	llmProvider   string
	llmModel      string
)

// cmrCmd represents the cmr command
var cmrCmd = &cobra.Command{
	Use:   "cmr [text]",
	Short: "Compute the code-mixing ratio for a text or a file of texts",
	Long: `Cmr computes the code-mixing ratio (the fraction of word tokens of
English origin) for a single text, a line file (one text per line), or
one column of a CSV/JSON dataset.

A token counts as English through a direct lexicon match, a hybrid-root
match (like'lamak → like), or a stemmed match. Empty texts yield 0.0.

Example:
  codemix cmr "bugün like attım yorum yaptım"
  codemix cmr --file comments.txt --json report.json
  codemix cmr --file dataset.csv --column text --md report.md --roots`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCMR,
}

func init() {
	rootCmd.AddCommand(cmrCmd)

	// Input flags
	cmrCmd.Flags().StringVar(&inputFile, "file", "", "input file: .txt lines, .csv, or .json")
	cmrCmd.Flags().StringVar(&inputColumn, "column", "text", "text column for CSV/JSON input")

	// Output flags
	cmrCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	cmrCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	cmrCmd.Flags().StringVar(&outCSV, "csv", "", "output CSV path (optional)")
	cmrCmd.Flags().BoolVar(&withRoots, "roots", false, "include English-root frequencies in the report")

	addClassifierFlags(cmrCmd)
	addLLMFlags(cmrCmd)
}

// addClassifierFlags registers the shared classification flags.
func addClassifierFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&lexiconPath, "lexicon", "", "English word-list file (default: embedded lexicon)")
	cmd.Flags().BoolVar(&noStemming, "no-stemming", false, "disable English stemming before lexicon lookup")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match lexicon entries case-sensitively")
	cmd.Flags().IntVar(&minTokenLen, "min-token-len", 2, "exclude shorter tokens from English counting")
}

// addLLMFlags registers the optional summarizer flags.
func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	cmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	cmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// buildConfig assembles the runtime configuration: viper's merged view
// (defaults, config file, CODEMIX_* env) with explicitly-set flags on top.
func buildConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg := configFromViper()
	if verbose {
		cfg.Output.Verbose = true
	}

	flags := cmd.Flags()
	if flags.Changed("lexicon") {
		cfg.Classifier.Lexicon = lexiconPath
	}
	if flags.Changed("no-stemming") {
		cfg.Classifier.Stemming = !noStemming
	}
	if flags.Changed("case-sensitive") {
		cfg.Classifier.CaseSensitive = caseSensitive
	}
	if flags.Changed("min-token-len") {
		cfg.Classifier.MinTokenLength = minTokenLen
	}

	if !llmEnabled {
		cfg.LLM.Provider = ""
		return cfg, nil
	}

	if flags.Changed("llm-provider") || cfg.LLM.Provider == "" {
		cfg.LLM.Provider = llmProvider
	}
	if flags.Changed("llm-model") || cfg.LLM.Model == "" {
		cfg.LLM.Model = llmModel
	}

	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}

func runCMR(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	// Inline and single-file runs are sequential; batch is the concurrent path.
	cfg.Concurrency.Workers = 1

	texts, subject, source, err := resolveInput(args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s (%d texts)\n", subject, len(texts))
	}

	analyzer, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return err
	}

	report, err := analyzer.AnalyzeCorpus(ctx, subject, source, texts, withRoots)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if err := analyzer.RenderReport(report, outJSON, outMD, outCSV, verbose); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// resolveInput turns the CLI invocation into a text slice: a positional
// argument, a line file, or a dataset column.
func resolveInput(args []string) (texts []string, subject, source string, err error) {
	if len(args) == 1 && inputFile != "" {
		return nil, "", "", fmt.Errorf("give either an inline text or --file, not both")
	}

	if len(args) == 1 {
		return []string{args[0]}, "inline text", "(inline)", nil
	}

	if inputFile == "" {
		return nil, "", "", fmt.Errorf("nothing to analyze: pass a text argument or --file")
	}

	texts, err = loadTexts(inputFile, inputColumn)
	if err != nil {
		return nil, "", "", err
	}
	return texts, inputFile, inputFile, nil
}

// loadTexts reads records from a dataset (.csv/.json column) or line file.
func loadTexts(path, column string) ([]string, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".json") {
		table, err := dataset.Load(path)
		if err != nil {
			return nil, err
		}
		return table.Column(column)
	}
	return dataset.ReadLines(path, false)
}
