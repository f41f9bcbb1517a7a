package interfaces

import "context"

// ReportKind selects which backend-generated compliance document to fetch.
type ReportKind string

const (
	ReportACR  ReportKind = "acr"
	ReportVPAT ReportKind = "vpat"
)

// IssueQuery narrows a server-side issue listing.
// Zero values mean "no constraint".
type IssueQuery struct {
	Severity    Severity `json:"severity,omitempty"`
	Rule        string   `json:"rule,omitempty"`
	FixableOnly bool     `json:"fixable_only,omitempty"`
}

// PlatformAPI abstracts the Ninja backend REST surface consumed by the CLI.
// The audit engine, remediation engine, report generator, citation service,
// and job queue all live behind this contract; none are re-implemented here.
type PlatformAPI interface {
	// UploadDocument uploads a local file to platform storage.
	UploadDocument(ctx context.Context, path string) (*Document, error)

	// StartAudit enqueues an accessibility audit for an uploaded document.
	StartAudit(ctx context.Context, documentID, standard string) (*AuditJob, error)

	// GetAuditJob fetches the current state of an audit job.
	GetAuditJob(ctx context.Context, jobID string) (*AuditJob, error)

	// GetAuditResult fetches the issues and severity summary of a completed audit.
	GetAuditResult(ctx context.Context, jobID string) (*AuditResult, error)

	// ListIssues fetches issues for a completed audit, filtered server-side.
	ListIssues(ctx context.Context, jobID string, q IssueQuery) ([]Issue, error)

	// ApplyQuickFixes asks the remediation engine to fix the given issues.
	ApplyQuickFixes(ctx context.Context, jobID string, issueIDs []string) (*RemediationOutcome, error)

	// FetchReport retrieves a backend-generated ACR/VPAT document.
	FetchReport(ctx context.Context, jobID string, kind ReportKind, format string) ([]byte, error)

	// ValidateCitations runs the editorial citation check on a document.
	ValidateCitations(ctx context.Context, documentID string) (*CitationReport, error)
}
