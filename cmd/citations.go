package cmd

import (
	"fmt"

	"github.com/s4cindia/ninja-cli/pkg/cli"
	"github.com/spf13/cobra"
)

var citationsCmd = &cobra.Command{
	Use:   "citations <document-id>",
	Short: "Run the editorial citation check on a document",
	Long: `Citations asks the platform's citation service to verify the references
of an uploaded document: DOI resolution, duplicate detection, and style
conformance.`,
	Args: cobra.ExactArgs(1),
	RunE: runCitations,
}

func init() {
	rootCmd.AddCommand(citationsCmd)
}

func runCitations(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("citations: %w", err)
	}

	client, err := newPlatformClient(cfg)
	if err != nil {
		return fmt.Errorf("citations: %w", err)
	}

	report, err := client.ValidateCitations(ctx, args[0])
	if err != nil {
		return fmt.Errorf("citations: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "checked %d citations, %d verified\n", report.Checked, report.Verified)

	if len(report.Issues) == 0 {
		fmt.Fprintln(out, "no citation issues")
		return nil
	}

	for _, issue := range report.Issues {
		fmt.Fprintf(out, "%-16s %s\n", issue.Type, issue.Citation)
		if issue.Detail != "" {
			fmt.Fprintf(out, "                 %s\n", issue.Detail)
		}
	}
	return nil
}
