package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cagridemirci1MIS/codemix/internal/dataset"
	"github.com/cagridemirci1MIS/codemix/internal/pipeline"
	"github.com/cagridemirci1MIS/codemix/internal/roots"
	"github.com/spf13/cobra"
)

var (
	rootsFile   string
	rootsColumn string
	rootsTopK   int
	rootsJSON   string
)

// rootsCmd represents the roots command
var rootsCmd = &cobra.Command{
	Use:   "roots [text]",
	Short: "Extract English word roots from code-mixed text",
	Long: `Roots lists the English-origin roots appearing in a text or corpus,
including the stems of hybrid forms: like'lamak contributes "like",
save'ledim contributes "save". Frequencies are ranked by count, ties
broken alphabetically, so runs are reproducible.

Example:
  codemix roots "Bugün like'ladım ve save'ledim."
  codemix roots --file comments.txt --top 20
  codemix roots --file dataset.csv --column text --json roots.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoots,
}

func init() {
	rootCmd.AddCommand(rootsCmd)

	rootsCmd.Flags().StringVar(&rootsFile, "file", "", "input file: .txt lines, .csv, or .json")
	rootsCmd.Flags().StringVar(&rootsColumn, "column", "text", "text column for CSV/JSON input")
	rootsCmd.Flags().IntVar(&rootsTopK, "top", 0, "limit output to the top K roots (0 = all)")
	rootsCmd.Flags().StringVar(&rootsJSON, "json", "", "output JSON path (optional)")

	addClassifierFlags(rootsCmd)
}

func runRoots(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	var texts []string
	switch {
	case len(args) == 1 && rootsFile != "":
		return fmt.Errorf("give either an inline text or --file, not both")
	case len(args) == 1:
		texts = []string{args[0]}
	case rootsFile != "":
		texts, err = loadTexts(rootsFile, rootsColumn)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("nothing to analyze: pass a text argument or --file")
	}

	analyzer, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return err
	}

	for i, t := range texts {
		texts[i] = dataset.StripMarkup(t)
	}
	ranked := roots.Top(analyzer.Extractor().Frequencies(texts), rootsTopK)

	if rootsJSON != "" {
		data, err := json.MarshalIndent(ranked, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal roots: %w", err)
		}
		if err := os.WriteFile(rootsJSON, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("write roots: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", rootsJSON)
		}
	}

	if len(ranked) == 0 {
		fmt.Println("No English roots found.")
		return nil
	}
	for _, rc := range ranked {
		fmt.Printf("%6d  %s\n", rc.Count, rc.Root)
	}
	return nil
}
