// Package report renders local compliance summaries from audit results and
// score breakdowns. Full ACR/VPAT documents are generated by the backend;
// this package only renders the client-side view.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/s4cindia/ninja-cli/pkg/interfaces"
	"github.com/s4cindia/ninja-cli/pkg/issues"
)

// Generator builds compliance reports from audit results and score breakdowns.
type Generator struct{}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces a ComplianceReport. Issues are sorted critical-first.
func (g *Generator) Generate(doc *interfaces.Document, result *interfaces.AuditResult, breakdown *interfaces.ScoreBreakdown, rating interfaces.Rating) *interfaces.ComplianceReport {
	sorted := make([]interfaces.Issue, len(result.Issues))
	copy(sorted, result.Issues)
	issues.SortBySeverity(sorted)

	rpt := &interfaces.ComplianceReport{
		ID:        "rpt-" + uuid.NewString(),
		Timestamp: time.Now(),
		JobID:     result.JobID,
		Standard:  result.Standard,
		Breakdown: *breakdown,
		Rating:    rating,
		Issues:    sorted,
		Summary:   buildSummary(breakdown, rating, result.Counts),
	}
	if doc != nil {
		rpt.Document = *doc
	}
	return rpt
}

// buildSummary creates a one-line summary of the score and issue counts.
func buildSummary(breakdown *interfaces.ScoreBreakdown, rating interfaces.Rating, counts interfaces.IssueSeverityCounts) string {
	return fmt.Sprintf("Compliance Score: %d/100 [%s] — %s",
		breakdown.FinalScore, rating, issues.Summarize(counts))
}
