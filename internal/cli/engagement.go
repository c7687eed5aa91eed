package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/cagridemirci1MIS/codemix/internal/dataset"
	"github.com/cagridemirci1MIS/codemix/internal/engage"
	"github.com/cagridemirci1MIS/codemix/internal/model"
	"github.com/spf13/cobra"
)

var engagementOut string

// engagementCmd represents the engagement command
var engagementCmd = &cobra.Command{
	Use:   "engagement <file>",
	Short: "Compute YouTube engagement rates over a dataset",
	Long: `Engagement applies the standard engagement-rate formula

  Engagement Rate (%) = ((Likes + Comments) / Views) × 100

across a CSV or JSON dataset with likes, comments, and views columns.
Zero or missing view counts yield 0.0 rather than a division error; rows
with unparseable numbers are skipped and the run continues. Decimal
commas in exported spreadsheets are accepted.

Example:
  codemix engagement videos.csv
  codemix engagement videos.csv --out engagement_rates.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runEngagement,
}

func init() {
	rootCmd.AddCommand(engagementCmd)

	engagementCmd.Flags().StringVar(&engagementOut, "out", "", "output CSV path (optional)")
}

func runEngagement(cmd *cobra.Command, args []string) error {
	table, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	results, err := engage.OnTable(table)
	if err != nil {
		return err
	}

	if engagementOut != "" {
		if err := writeEngagementCSV(results, engagementOut); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote CSV: %s\n", engagementOut)
		}
	}

	var sum float64
	rated := 0
	for _, r := range results {
		if r.Status == model.StatusOK {
			sum += r.Rate
			rated++
		}
	}

	fmt.Printf("Videos:     %d (skipped: %d)\n", len(results), len(results)-rated)
	if rated > 0 {
		fmt.Printf("Mean rate:  %.2f%%\n", sum/float64(rated))
	}
	return nil
}

func writeEngagementCSV(results []engage.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "likes", "comments", "views", "engagement_rate", "status"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Index),
			strconv.FormatFloat(r.Likes, 'f', -1, 64),
			strconv.FormatFloat(r.Comments, 'f', -1, 64),
			strconv.FormatFloat(r.Views, 'f', -1, 64),
			strconv.FormatFloat(r.Rate, 'f', -1, 64),
			r.Status,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
