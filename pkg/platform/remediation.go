package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// ApplyQuickFixes asks the remediation engine to apply automated fixes for
// the given issues. Which issues are eligible is decided by the backend;
// the Fixable flag on an issue reflects that decision.
func (c *Client) ApplyQuickFixes(ctx context.Context, jobID string, issueIDs []string) (*interfaces.RemediationOutcome, error) {
	if err := ValidateJobID(jobID); err != nil {
		return nil, err
	}
	if len(issueIDs) == 0 {
		return nil, fmt.Errorf("platform: no issue ids to remediate")
	}

	payload := map[string][]string{"issue_ids": issueIDs}

	outcome := &interfaces.RemediationOutcome{}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/audits/"+jobID+"/remediate", nil, payload, outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}
