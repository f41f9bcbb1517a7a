package cmd

import (
	"fmt"

	"github.com/s4cindia/ninja-cli/pkg/cli"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past audit runs from the local history cache",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	store := openHistory(cfg)
	if store == nil {
		return fmt.Errorf("history: local history cache is disabled")
	}
	defer func() { _ = store.Close() }()

	entries, err := store.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "no recorded audits")
		return nil
	}

	fmt.Fprintf(out, "%-19s %5s %-15s %-10s %s\n", "date", "score", "rating", "standard", "document")
	for _, e := range entries {
		fmt.Fprintf(out, "%-19s %5d %-15s %-10s %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Score, e.Rating, e.Standard, e.Filename)
	}
	return nil
}
