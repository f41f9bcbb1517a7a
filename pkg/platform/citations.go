package platform

import (
	"context"
	"net/http"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// ValidateCitations runs the editorial citation check (DOI verification,
// duplicate detection, style conformance) on an uploaded document.
func (c *Client) ValidateCitations(ctx context.Context, documentID string) (*interfaces.CitationReport, error) {
	if err := ValidateDocumentID(documentID); err != nil {
		return nil, err
	}

	payload := map[string]string{"document_id": documentID}

	report := &interfaces.CitationReport{}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/citations/validate", nil, payload, report); err != nil {
		return nil, err
	}
	return report, nil
}
