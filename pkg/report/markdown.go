package report

import (
	"fmt"
	"io"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// MarkdownFormatter writes a compliance report as Markdown suitable for
// sharing in tickets and review threads.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a Markdown report formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the report as Markdown to the given writer.
func (f *MarkdownFormatter) Format(w io.Writer, report *interfaces.ComplianceReport) error {
	f.writeHeader(w, report)
	f.writeSummaryTable(w, report)
	f.writeDeductionTable(w, report)
	f.writeIssues(w, report)
	f.writeFooter(w, report)
	return nil
}

func (f *MarkdownFormatter) writeHeader(w io.Writer, report *interfaces.ComplianceReport) {
	fmt.Fprintf(w, "# Ninja Accessibility Report %s\n\n", ratingBadge(report.Rating))
}

func (f *MarkdownFormatter) writeSummaryTable(w io.Writer, report *interfaces.ComplianceReport) {
	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|--------|-------|")
	fmt.Fprintf(w, "| **Compliance Score** | %d/100 %s |\n", report.Breakdown.FinalScore, ratingBadge(report.Rating))
	fmt.Fprintf(w, "| **Rating** | %s |\n", report.Rating)
	if report.Document.Filename != "" {
		fmt.Fprintf(w, "| **Document** | %s (%s) |\n", report.Document.Filename, report.Document.Format)
	}
	fmt.Fprintf(w, "| **Standard** | %s |\n", report.Standard)
	fmt.Fprintf(w, "| **Total Issues** | %d |\n", len(report.Issues))
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeDeductionTable(w io.Writer, report *interfaces.ComplianceReport) {
	bd := report.Breakdown

	fmt.Fprintln(w, "## Score Breakdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Severity | Count | Weight | Deduction |")
	fmt.Fprintln(w, "|----------|------:|-------:|----------:|")
	for _, tier := range interfaces.Tiers() {
		d := bd.Deductions[tier]
		fmt.Fprintf(w, "| %s | %d | %d | -%d |\n", tier, d.Count, bd.Weights[tier], d.Points)
	}
	fmt.Fprintf(w, "| **total** | %d | | **-%d** |\n\n", totalCount(bd), bd.TotalDeduction)
}

func (f *MarkdownFormatter) writeIssues(w io.Writer, report *interfaces.ComplianceReport) {
	if len(report.Issues) == 0 {
		fmt.Fprintln(w, "> No issues — fully accessible!")
		fmt.Fprintln(w)
		return
	}

	grouped := groupBySeverity(report.Issues)

	for _, tier := range interfaces.Tiers() {
		list, ok := grouped[tier]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "## %s (%d)\n\n", tier, len(list))
		for _, issue := range list {
			fmt.Fprintf(w, "- **%s** — %s", issue.RuleID, issue.Title)
			if issue.Location != "" {
				fmt.Fprintf(w, " (`%s`)", issue.Location)
			}
			fmt.Fprintln(w)
			if issue.Remediation != "" {
				fmt.Fprintf(w, "  - fix: %s\n", issue.Remediation)
			}
		}
		fmt.Fprintln(w)
	}
}

func (f *MarkdownFormatter) writeFooter(w io.Writer, report *interfaces.ComplianceReport) {
	fmt.Fprintf(w, "---\n*Job %s · report %s · generated %s*\n",
		report.JobID, report.ID, report.Timestamp.Format("2006-01-02 15:04:05"))
}

// ratingBadge returns an emoji badge for a conformance rating.
func ratingBadge(r interfaces.Rating) string {
	switch r {
	case interfaces.RatingConformant:
		return "🟢"
	case interfaces.RatingPartial:
		return "🟡"
	case interfaces.RatingNonConformant:
		return "🔴"
	default:
		return ""
	}
}

func totalCount(bd interfaces.ScoreBreakdown) int {
	total := 0
	for _, d := range bd.Deductions {
		total += d.Count
	}
	return total
}
