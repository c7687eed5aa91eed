package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/cagridemirci1MIS/codemix/internal/dataset"
	"github.com/cagridemirci1MIS/codemix/internal/stats"
	"github.com/spf13/cobra"
)

var (
	edaColumn string
	edaTopK   int
	edaOut    string
)

// edaCmd represents the eda command
var edaCmd = &cobra.Command{
	Use:   "eda <file>",
	Short: "Exploratory analysis of a text dataset",
	Long: `Eda summarizes a text dataset before annotation or modeling:
per-record token and character counts, descriptive statistics over both,
missing-value and duplicate counts, and the most frequent words.

Example:
  codemix eda dataset.csv
  codemix eda dataset.csv --column transcript --top 30 --out summary.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runEDA,
}

func init() {
	rootCmd.AddCommand(edaCmd)

	edaCmd.Flags().StringVar(&edaColumn, "column", "text", "text column to analyze")
	edaCmd.Flags().IntVar(&edaTopK, "top", 20, "number of top words to report (0 = all)")
	edaCmd.Flags().StringVar(&edaOut, "out", "", "output CSV path for per-record stats (optional)")
}

func runEDA(cmd *cobra.Command, args []string) error {
	table, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	records, err := table.Column(edaColumn)
	if err != nil {
		return err
	}

	for i, rec := range records {
		records[i] = dataset.StripMarkup(rec)
	}

	summary := stats.Summarize(records, edaTopK)

	if edaOut != "" {
		if err := writeEDACSV(summary, edaOut); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote CSV: %s\n", edaOut)
		}
	}

	fmt.Printf("Records:     %d\n", len(summary.Records))
	fmt.Printf("Missing:     %d\n", summary.Missing)
	fmt.Printf("Duplicates:  %d\n", summary.Duplicates)
	fmt.Printf("\nToken counts:  %s\n", formatDescribe(summary.TokenCounts))
	fmt.Printf("Char counts:   %s\n", formatDescribe(summary.CharCounts))

	if len(summary.TopWords) > 0 {
		fmt.Printf("\nTop words:\n")
		for _, wc := range summary.TopWords {
			fmt.Printf("%6d  %s\n", wc.Count, wc.Root)
		}
	}
	return nil
}

func formatDescribe(d stats.Describe) string {
	return fmt.Sprintf("n=%d mean=%.2f std=%.2f min=%.0f q25=%.1f median=%.1f q75=%.1f max=%.0f",
		d.Count, d.Mean, d.Std, d.Min, d.Q25, d.Median, d.Q75, d.Max)
}

func writeEDACSV(summary stats.Summary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "tokens", "chars", "missing", "duplicate"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range summary.Records {
		row := []string{
			strconv.Itoa(r.Index),
			strconv.Itoa(r.Tokens),
			strconv.Itoa(r.Chars),
			strconv.FormatBool(r.Missing),
			strconv.FormatBool(r.Duplicate),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
