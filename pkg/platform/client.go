// Package platform implements the HTTP client for the Ninja backend API.
// All accessibility auditing, remediation, report generation, and citation
// analysis happens server-side; this package only speaks the REST contract.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// DefaultBaseURL is the hosted Ninja Platform API endpoint.
const DefaultBaseURL = "https://api.ninjaplatform.io"

const requestTimeout = 60 * time.Second

// Client is a PlatformAPI implementation over HTTP.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ interfaces.PlatformAPI = (*Client)(nil)

// NewClient creates a platform API client. Token is sent as a bearer token.
// If baseURL is empty, DefaultBaseURL is used.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) setAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out. Non-2xx responses are returned as *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("platform: marshaling %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("platform: creating %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("platform: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("platform: decoding %s %s response: %w", method, path, err)
	}
	return nil
}
