package cmd

import (
	"fmt"

	"github.com/s4cindia/ninja-cli/pkg/cli"
	"github.com/s4cindia/ninja-cli/pkg/interfaces"
	"github.com/s4cindia/ninja-cli/pkg/issues"
	"github.com/spf13/cobra"
)

var (
	issueSeverities []string
	issueRule       string
	issuePage       int
	issueFixable    bool
)

var issuesCmd = &cobra.Command{
	Use:   "issues <job-id>",
	Short: "List the accessibility issues found by an audit",
	Long: `Issues lists the issues of a completed audit, sorted critical-first.

Filter examples:
  ninja issues <job-id> --severity critical --severity serious
  ninja issues <job-id> --rule img- --page 12
  ninja issues <job-id> --fixable`,
	Args: cobra.ExactArgs(1),
	RunE: runIssues,
}

func init() {
	issuesCmd.Flags().StringArrayVar(&issueSeverities, "severity", nil, "only show issues at these severity tiers (repeatable)")
	issuesCmd.Flags().StringVar(&issueRule, "rule", "", "only show issues whose rule id starts with this prefix")
	issuesCmd.Flags().IntVar(&issuePage, "page", 0, "only show issues on this page")
	issuesCmd.Flags().BoolVar(&issueFixable, "fixable", false, "only show issues eligible for quick fixes")
	rootCmd.AddCommand(issuesCmd)
}

func runIssues(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jobID := args[0]

	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("issues: %w", err)
	}

	client, err := newPlatformClient(cfg)
	if err != nil {
		return fmt.Errorf("issues: %w", err)
	}

	list, err := client.ListIssues(ctx, jobID, interfaces.IssueQuery{})
	if err != nil {
		return fmt.Errorf("issues: %w", err)
	}

	filter := issues.Filter{
		RulePrefix:  issueRule,
		Page:        issuePage,
		FixableOnly: issueFixable,
	}
	for _, s := range issueSeverities {
		filter.Severities = append(filter.Severities, interfaces.Severity(s))
	}

	filtered := issues.Apply(list, filter)
	issues.SortBySeverity(filtered)

	out := cmd.OutOrStdout()
	if len(filtered) == 0 {
		fmt.Fprintln(out, "no matching issues")
		return nil
	}

	for _, issue := range filtered {
		fixable := " "
		if issue.Fixable {
			fixable = "*"
		}
		fmt.Fprintf(out, "%-8s %s [%s] %s\n", issue.Severity, fixable, issue.RuleID, issue.Title)
		if issue.Location != "" {
			fmt.Fprintf(out, "           %s\n", issue.Location)
		}
	}
	fmt.Fprintf(out, "\n%s   (* = quick-fixable)\n", issues.Summarize(issues.CountBySeverity(filtered)))

	return nil
}
