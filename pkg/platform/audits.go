package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// StartAudit enqueues an accessibility audit for an uploaded document.
func (c *Client) StartAudit(ctx context.Context, documentID, standard string) (*interfaces.AuditJob, error) {
	if err := ValidateDocumentID(documentID); err != nil {
		return nil, err
	}
	if err := ValidateStandard(standard); err != nil {
		return nil, err
	}

	payload := map[string]string{
		"document_id": documentID,
		"standard":    standard,
	}

	job := &interfaces.AuditJob{}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/audits", nil, payload, job); err != nil {
		return nil, err
	}
	return job, nil
}

// GetAuditJob fetches the current state of an audit job.
func (c *Client) GetAuditJob(ctx context.Context, jobID string) (*interfaces.AuditJob, error) {
	if err := ValidateJobID(jobID); err != nil {
		return nil, err
	}

	job := &interfaces.AuditJob{}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/audits/"+jobID, nil, nil, job); err != nil {
		return nil, err
	}
	return job, nil
}

// GetAuditResult fetches the issues and severity summary of a completed audit.
func (c *Client) GetAuditResult(ctx context.Context, jobID string) (*interfaces.AuditResult, error) {
	if err := ValidateJobID(jobID); err != nil {
		return nil, err
	}

	result := &interfaces.AuditResult{}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/audits/"+jobID+"/result", nil, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListIssues fetches issues for an audit, filtered server-side by the query.
func (c *Client) ListIssues(ctx context.Context, jobID string, q interfaces.IssueQuery) ([]interfaces.Issue, error) {
	if err := ValidateJobID(jobID); err != nil {
		return nil, err
	}

	query := url.Values{}
	if q.Severity != "" {
		query.Set("severity", string(q.Severity))
	}
	if q.Rule != "" {
		query.Set("rule", q.Rule)
	}
	if q.FixableOnly {
		query.Set("fixable", "true")
	}

	var envelope struct {
		Issues []interfaces.Issue `json:"issues"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/audits/"+jobID+"/issues", query, nil, &envelope); err != nil {
		return nil, fmt.Errorf("platform: listing issues for job %s: %w", jobID, err)
	}
	return envelope.Issues, nil
}
