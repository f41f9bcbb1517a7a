// Package interfaces defines the shared types and contracts for all ninja modules.
// This package has ZERO dependencies on any other pkg/ package.
// All cross-module communication goes through types and interfaces defined here.
package interfaces

import "time"

// Severity tiers for accessibility issues
type Severity string

const (
	SeverityCritical Severity = "critical" // Blocks assistive technology outright
	SeveritySerious  Severity = "serious"  // Major barrier for some users
	SeverityModerate Severity = "moderate" // Degraded experience
	SeverityMinor    Severity = "minor"    // Cosmetic or best-practice gap
)

// Tiers returns all severity tiers in descending order of impact.
func Tiers() []Severity {
	return []Severity{SeverityCritical, SeveritySerious, SeverityModerate, SeverityMinor}
}

// IssueSeverityCounts holds the number of detected issues at each severity
// tier for one audited document.
type IssueSeverityCounts struct {
	Critical int `json:"critical"`
	Serious  int `json:"serious"`
	Moderate int `json:"moderate"`
	Minor    int `json:"minor"`
}

// Count returns the count for a single tier. Unknown tiers count as zero.
func (c IssueSeverityCounts) Count(s Severity) int {
	switch s {
	case SeverityCritical:
		return c.Critical
	case SeveritySerious:
		return c.Serious
	case SeverityModerate:
		return c.Moderate
	case SeverityMinor:
		return c.Minor
	default:
		return 0
	}
}

// Total returns the total number of issues across all tiers.
func (c IssueSeverityCounts) Total() int {
	return c.Critical + c.Serious + c.Moderate + c.Minor
}

// DocumentFormat identifies the upload format of an audited document.
type DocumentFormat string

const (
	FormatEPUB DocumentFormat = "epub"
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

// Document is a file registered with the platform's storage service.
type Document struct {
	ID         string         `json:"id"`
	Filename   string         `json:"filename"`
	Format     DocumentFormat `json:"format"`
	Size       int64          `json:"size"`
	UploadedAt time.Time      `json:"uploaded_at"`
}

// JobStatus is the audit job lifecycle as observed by clients.
// The job queue itself lives in the backend; clients only read its states.
type JobStatus string

const (
	JobQueued     JobStatus = "queued"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether the status is a final state.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// AuditJob is one accessibility audit run tracked by the backend job queue.
type AuditJob struct {
	JobID      string    `json:"job_id"`
	DocumentID string    `json:"document_id"`
	Standard   string    `json:"standard"`
	Status     JobStatus `json:"status"`
	Progress   int       `json:"progress"` // 0-100
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Issue represents a single accessibility issue found by the audit engine.
type Issue struct {
	ID          string         `json:"id"`
	RuleID      string         `json:"rule_id"`
	Criterion   string         `json:"criterion,omitempty"` // WCAG success criterion, e.g. "1.1.1"
	Severity    Severity       `json:"severity"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Location    string         `json:"location,omitempty"` // e.g. "OEBPS/ch03.xhtml:142"
	Page        int            `json:"page,omitempty"`
	Remediation string         `json:"remediation,omitempty"`
	Fixable     bool           `json:"fixable"` // eligible for backend quick-fix
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// AuditResult is the completed output of one audit job.
type AuditResult struct {
	JobID       string              `json:"job_id"`
	DocumentID  string              `json:"document_id"`
	Standard    string              `json:"standard"`
	Counts      IssueSeverityCounts `json:"counts"`
	Issues      []Issue             `json:"issues"`
	CompletedAt time.Time           `json:"completed_at"`
}

// Deduction is the per-tier contribution to the total score deduction.
type Deduction struct {
	Count  int `json:"count"`
	Points int `json:"points"`
}

// ScoreBreakdown is the auditable output of the compliance score calculator.
// FinalScore is always an integer in [0, 100]; TotalDeduction is >= 0 and
// may exceed 100, in which case FinalScore clamps to 0.
type ScoreBreakdown struct {
	Weights        map[Severity]int       `json:"weights"`
	Deductions     map[Severity]Deduction `json:"deductions"`
	TotalDeduction int                    `json:"total_deduction"`
	FinalScore     int                    `json:"final_score"`
}

// Rating is the VPAT-style conformance rating derived from the final score.
type Rating string

const (
	RatingConformant    Rating = "CONFORMANT"     // Ship it
	RatingPartial       Rating = "PARTIAL"        // Remediation recommended
	RatingNonConformant Rating = "NON_CONFORMANT" // Fails the compliance bar
)

// ComplianceReport is the locally rendered summary of one audit run.
// Full ACR/VPAT documents are generated by the backend and only fetched here.
type ComplianceReport struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	JobID     string         `json:"job_id"`
	Document  Document       `json:"document"`
	Standard  string         `json:"standard"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Rating    Rating         `json:"rating"`
	Issues    []Issue        `json:"issues"`
	Summary   string         `json:"summary"`
}

// RemediationOutcome is the backend's response to a quick-fix request.
type RemediationOutcome struct {
	JobID   string              `json:"job_id"`
	Applied int                 `json:"applied"`
	Failed  int                 `json:"failed"`
	Details []RemediationDetail `json:"details,omitempty"`
}

// RemediationDetail reports the outcome for a single issue.
type RemediationDetail struct {
	IssueID string `json:"issue_id"`
	Status  string `json:"status"` // "applied" or "failed"
	Message string `json:"message,omitempty"`
}

// CitationIssue is one problem flagged by the citation validation service.
type CitationIssue struct {
	ID       string `json:"id"`
	Type     string `json:"type"` // "missing-doi", "unverified-doi", "duplicate", "style"
	Citation string `json:"citation"`
	Location string `json:"location,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// CitationReport is the output of the editorial citation check.
type CitationReport struct {
	DocumentID string          `json:"document_id"`
	Checked    int             `json:"checked"`
	Verified   int             `json:"verified"`
	Issues     []CitationIssue `json:"issues"`
}
