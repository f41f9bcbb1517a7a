// Package issues provides client-side filtering, sorting, and summarising
// of audit issue lists returned by the backend.
package issues

import (
	"fmt"
	"sort"
	"strings"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// severityOrder defines the sort priority for issues (critical first).
var severityOrder = map[interfaces.Severity]int{
	interfaces.SeverityCritical: 0,
	interfaces.SeveritySerious:  1,
	interfaces.SeverityModerate: 2,
	interfaces.SeverityMinor:    3,
}

// Filter selects issues matching all of its non-zero criteria.
type Filter struct {
	Severities  []interfaces.Severity
	RulePrefix  string
	Page        int // 0 means any page
	FixableOnly bool
}

// Apply returns the issues matching the filter, preserving input order.
func Apply(list []interfaces.Issue, f Filter) []interfaces.Issue {
	var out []interfaces.Issue
	for _, issue := range list {
		if !matches(issue, f) {
			continue
		}
		out = append(out, issue)
	}
	return out
}

func matches(issue interfaces.Issue, f Filter) bool {
	if len(f.Severities) > 0 && !containsSeverity(f.Severities, issue.Severity) {
		return false
	}
	if f.RulePrefix != "" && !strings.HasPrefix(issue.RuleID, f.RulePrefix) {
		return false
	}
	if f.Page > 0 && issue.Page != f.Page {
		return false
	}
	if f.FixableOnly && !issue.Fixable {
		return false
	}
	return true
}

func containsSeverity(set []interfaces.Severity, s interfaces.Severity) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// SortBySeverity sorts issues in place with critical first, minor last.
// Issues at the same tier are ordered by location, then rule ID.
func SortBySeverity(list []interfaces.Issue) {
	sort.SliceStable(list, func(i, j int) bool {
		oi := severityOrder[list[i].Severity]
		oj := severityOrder[list[j].Severity]
		if oi != oj {
			return oi < oj
		}
		if list[i].Location != list[j].Location {
			return list[i].Location < list[j].Location
		}
		return list[i].RuleID < list[j].RuleID
	})
}

// CountBySeverity tallies an issue list into severity counts, the input
// record of the compliance score calculator. Unknown tiers are ignored.
func CountBySeverity(list []interfaces.Issue) interfaces.IssueSeverityCounts {
	var counts interfaces.IssueSeverityCounts
	for _, issue := range list {
		switch issue.Severity {
		case interfaces.SeverityCritical:
			counts.Critical++
		case interfaces.SeveritySerious:
			counts.Serious++
		case interfaces.SeverityModerate:
			counts.Moderate++
		case interfaces.SeverityMinor:
			counts.Minor++
		}
	}
	return counts
}

// Summarize produces a one-line summary like "12 issues (2 critical, 4 serious, 6 minor)".
func Summarize(counts interfaces.IssueSeverityCounts) string {
	total := counts.Total()
	if total == 0 {
		return "no issues"
	}

	var parts []string
	for _, tier := range interfaces.Tiers() {
		if c := counts.Count(tier); c > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c, tier))
		}
	}

	return fmt.Sprintf("%d issues (%s)", total, strings.Join(parts, ", "))
}
