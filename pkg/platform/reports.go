package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// Report output formats supported by the backend generator.
var allowedReportFormats = map[string]bool{
	"html": true,
	"json": true,
	"docx": true,
}

// FetchReport retrieves a backend-generated ACR or VPAT document as raw bytes.
func (c *Client) FetchReport(ctx context.Context, jobID string, kind interfaces.ReportKind, format string) ([]byte, error) {
	if err := ValidateJobID(jobID); err != nil {
		return nil, err
	}
	if kind != interfaces.ReportACR && kind != interfaces.ReportVPAT {
		return nil, fmt.Errorf("platform: unsupported report kind %q", kind)
	}
	if !allowedReportFormats[format] {
		return nil, fmt.Errorf("platform: unsupported report format %q", format)
	}

	query := url.Values{}
	query.Set("type", string(kind))
	query.Set("format", format)

	u := c.baseURL + "/api/v1/audits/" + jobID + "/report?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("platform: creating report request: %w", err)
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("platform: fetching %s report for job %s: %w", kind, jobID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("platform: reading %s report for job %s: %w", kind, jobID, err)
	}
	return body, nil
}
