package cmd

import (
	"fmt"

	"github.com/s4cindia/ninja-cli/pkg/cli"
	"github.com/s4cindia/ninja-cli/pkg/interfaces"
	"github.com/spf13/cobra"
)

var (
	remediateIssueIDs []string
	remediateAll      bool
)

var remediateCmd = &cobra.Command{
	Use:   "remediate <job-id>",
	Short: "Apply automated quick fixes to audit issues",
	Long: `Remediate asks the platform's remediation engine to apply automated
fixes for issues found by an audit.

Fix specific issues:
  ninja remediate <job-id> --issue i-123 --issue i-456

Fix everything the engine can:
  ninja remediate <job-id> --all`,
	Args: cobra.ExactArgs(1),
	RunE: runRemediate,
}

func init() {
	remediateCmd.Flags().StringArrayVar(&remediateIssueIDs, "issue", nil, "issue id to fix (repeatable)")
	remediateCmd.Flags().BoolVar(&remediateAll, "all", false, "fix all quick-fixable issues")
	rootCmd.AddCommand(remediateCmd)
}

func runRemediate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jobID := args[0]

	if len(remediateIssueIDs) == 0 && !remediateAll {
		return fmt.Errorf("remediate: provide --issue ids or --all")
	}

	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("remediate: %w", err)
	}

	client, err := newPlatformClient(cfg)
	if err != nil {
		return fmt.Errorf("remediate: %w", err)
	}

	ids := remediateIssueIDs
	if remediateAll {
		list, err := client.ListIssues(ctx, jobID, interfaces.IssueQuery{FixableOnly: true})
		if err != nil {
			return fmt.Errorf("remediate: %w", err)
		}
		ids = issueIDs(list)
		if len(ids) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no quick-fixable issues")
			return nil
		}
	}

	outcome, err := client.ApplyQuickFixes(ctx, jobID, ids)
	if err != nil {
		return fmt.Errorf("remediate: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "applied %d fix(es), %d failed\n", outcome.Applied, outcome.Failed)
	for _, d := range outcome.Details {
		if d.Status == "failed" {
			fmt.Fprintf(out, "  %s: %s\n", d.IssueID, d.Message)
		}
	}

	if outcome.Applied > 0 {
		fmt.Fprintln(out, "re-run the audit to refresh the compliance score")
	}
	return nil
}

// issueIDs extracts the ids from an issue list.
func issueIDs(list []interfaces.Issue) []string {
	ids := make([]string, 0, len(list))
	for _, issue := range list {
		ids = append(ids, issue.ID)
	}
	return ids
}
