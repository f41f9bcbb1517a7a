package cmd

import (
	"fmt"
	"os"

	"github.com/s4cindia/ninja-cli/pkg/cli"
	"github.com/s4cindia/ninja-cli/pkg/interfaces"
	"github.com/spf13/cobra"
)

var (
	reportType   string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report <job-id>",
	Short: "Fetch a backend-generated ACR or VPAT conformance report",
	Long: `Report downloads the ACR (Accessibility Conformance Report) or VPAT
document the platform generated for a completed audit.

  ninja report <job-id> --type acr --report-format html -o report.html`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportType, "type", "acr", "report type (acr|vpat)")
	reportCmd.Flags().StringVar(&reportFormat, "report-format", "html", "report document format (html|json|docx)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jobID := args[0]

	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	client, err := newPlatformClient(cfg)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	body, err := client.FetchReport(ctx, jobID, interfaces.ReportKind(reportType), reportFormat)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(body)
		return err
	}

	if err := os.WriteFile(output, body, 0o644); err != nil {
		return fmt.Errorf("report: writing %s: %w", output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s report to %s (%d bytes)\n", reportType, output, len(body))
	return nil
}
