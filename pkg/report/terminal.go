package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// TerminalFormatter writes a color-coded compliance report to a terminal.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a terminal report formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// Format writes the report to the given writer using ANSI colors.
func (f *TerminalFormatter) Format(w io.Writer, report *interfaces.ComplianceReport) error {
	f.writeHeader(w, report)
	f.writeScore(w, report)
	f.writeDeductions(w, report)
	f.writeIssues(w, report)
	f.writeFooter(w, report)
	return nil
}

func (f *TerminalFormatter) writeHeader(w io.Writer, report *interfaces.ComplianceReport) {
	fmt.Fprintf(w, "\n%s%s══════════════════════════════════════════%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s  Ninja Accessibility Report%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s══════════════════════════════════════════%s\n\n", colorBold, colorCyan, colorReset)

	if report.Document.Filename != "" {
		fmt.Fprintf(w, "  %s%s (%s) — %s%s\n\n", colorDim, report.Document.Filename, report.Document.Format, report.Standard, colorReset)
	}
}

func (f *TerminalFormatter) writeScore(w io.Writer, report *interfaces.ComplianceReport) {
	color := ratingColor(report.Rating)
	fmt.Fprintf(w, "  %s%sCompliance Score: %d/100 [%s]%s\n\n",
		colorBold, color, report.Breakdown.FinalScore, report.Rating, colorReset)
}

func (f *TerminalFormatter) writeDeductions(w io.Writer, report *interfaces.ComplianceReport) {
	bd := report.Breakdown
	if bd.TotalDeduction == 0 {
		fmt.Fprintf(w, "  %sNo deductions — fully accessible!%s\n\n", colorGreen, colorReset)
		return
	}

	fmt.Fprintf(w, "  %sDeductions%s\n", colorBold, colorReset)
	for _, tier := range interfaces.Tiers() {
		d := bd.Deductions[tier]
		if d.Count == 0 {
			continue
		}
		fmt.Fprintf(w, "    %s%-8s%s %3d × %2d = -%d\n",
			severityColor(tier), tier, colorReset, d.Count, bd.Weights[tier], d.Points)
	}
	fmt.Fprintf(w, "    %stotal deduction: -%d%s\n\n", colorDim, bd.TotalDeduction, colorReset)
}

func (f *TerminalFormatter) writeIssues(w io.Writer, report *interfaces.ComplianceReport) {
	if len(report.Issues) == 0 {
		return
	}

	grouped := groupBySeverity(report.Issues)

	for _, tier := range interfaces.Tiers() {
		list, ok := grouped[tier]
		if !ok {
			continue
		}

		color := severityColor(tier)
		label := strings.ToUpper(string(tier))
		fmt.Fprintf(w, "  %s%s── %s (%d) ──%s\n", colorBold, color, label, len(list), colorReset)

		for _, issue := range list {
			fmt.Fprintf(w, "    %s[%s]%s %s\n", color, issue.RuleID, colorReset, issue.Title)
			if issue.Location != "" {
				fmt.Fprintf(w, "      %s%s%s\n", colorDim, issue.Location, colorReset)
			}
			if issue.Criterion != "" {
				fmt.Fprintf(w, "      %sWCAG %s%s\n", colorDim, issue.Criterion, colorReset)
			}
			if issue.Remediation != "" {
				fmt.Fprintf(w, "      %s→ %s%s\n", colorCyan, issue.Remediation, colorReset)
			}
			fmt.Fprintln(w)
		}
	}
}

func (f *TerminalFormatter) writeFooter(w io.Writer, report *interfaces.ComplianceReport) {
	fmt.Fprintf(w, "  %s%s──────────────────────────────────────────%s\n", colorDim, colorCyan, colorReset)
	fmt.Fprintf(w, "  %sJob: %s | Report: %s%s\n", colorDim, report.JobID, report.ID, colorReset)
	fmt.Fprintf(w, "  %sGenerated: %s%s\n\n", colorDim, report.Timestamp.Format("2006-01-02 15:04:05"), colorReset)
}

// ratingColor returns the ANSI color for a conformance rating.
func ratingColor(r interfaces.Rating) string {
	switch r {
	case interfaces.RatingConformant:
		return colorGreen
	case interfaces.RatingPartial:
		return colorYellow
	case interfaces.RatingNonConformant:
		return colorRed
	default:
		return colorReset
	}
}

// severityColor returns the ANSI color for a severity tier.
func severityColor(s interfaces.Severity) string {
	switch s {
	case interfaces.SeverityCritical, interfaces.SeveritySerious:
		return colorRed
	case interfaces.SeverityModerate:
		return colorYellow
	case interfaces.SeverityMinor:
		return colorDim
	default:
		return colorReset
	}
}

// groupBySeverity groups issues by their severity tier.
func groupBySeverity(list []interfaces.Issue) map[interfaces.Severity][]interfaces.Issue {
	grouped := make(map[interfaces.Severity][]interfaces.Issue)
	for _, issue := range list {
		grouped[issue.Severity] = append(grouped[issue.Severity], issue)
	}
	return grouped
}
