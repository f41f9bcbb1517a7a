package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/s4cindia/ninja-cli/pkg/cli"
	"github.com/s4cindia/ninja-cli/pkg/interfaces"
	"github.com/spf13/cobra"
)

var (
	scoreJobID    string
	scoreCritical int
	scoreSerious  int
	scoreModerate int
	scoreMinor    int
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute a compliance score breakdown from issue counts",
	Long: `Score converts issue counts by severity into a 0-100 compliance score
with a per-tier deduction breakdown.

From explicit counts:
  ninja score --critical 1 --serious 2 --moderate 3 --minor 5

From a completed audit job:
  ninja score --job 123e4567-e89b-12d3-a456-426614174000`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreJobID, "job", "", "compute from a completed audit job")
	scoreCmd.Flags().IntVar(&scoreCritical, "critical", 0, "number of critical issues")
	scoreCmd.Flags().IntVar(&scoreSerious, "serious", 0, "number of serious issues")
	scoreCmd.Flags().IntVar(&scoreModerate, "moderate", 0, "number of moderate issues")
	scoreCmd.Flags().IntVar(&scoreMinor, "minor", 0, "number of minor issues")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}

	counts := interfaces.IssueSeverityCounts{
		Critical: scoreCritical,
		Serious:  scoreSerious,
		Moderate: scoreModerate,
		Minor:    scoreMinor,
	}

	if scoreJobID != "" {
		client, err := newPlatformClient(cfg)
		if err != nil {
			return fmt.Errorf("score: %w", err)
		}
		result, err := client.GetAuditResult(cmd.Context(), scoreJobID)
		if err != nil {
			return fmt.Errorf("score: %w", err)
		}
		counts = result.Counts
	}

	calc := newCalculator(cfg)
	breakdown, err := calc.Breakdown(counts)
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}
	rating := calc.Rate(breakdown.FinalScore)

	w, closeOutput, err := outputWriter()
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}
	defer closeOutput()

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*interfaces.ScoreBreakdown
			Rating interfaces.Rating `json:"rating"`
		}{breakdown, rating})
	}

	writeBreakdownTable(w, breakdown, rating)
	return nil
}

// writeBreakdownTable renders the deduction table as plain text.
func writeBreakdownTable(w io.Writer, bd *interfaces.ScoreBreakdown, rating interfaces.Rating) {
	fmt.Fprintf(w, "Compliance Score: %d/100 [%s]\n\n", bd.FinalScore, rating)
	fmt.Fprintf(w, "%-10s %6s %7s %10s\n", "severity", "count", "weight", "deduction")
	for _, tier := range interfaces.Tiers() {
		d := bd.Deductions[tier]
		fmt.Fprintf(w, "%-10s %6d %7d %10d\n", tier, d.Count, bd.Weights[tier], -d.Points)
	}
	fmt.Fprintf(w, "\ntotal deduction: -%d\n", bd.TotalDeduction)
}
