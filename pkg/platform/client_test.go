package platform

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

const (
	testDocID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	testJobID = "123e4567-e89b-12d3-a456-426614174000"
)

func TestClient_StartAudit(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotPayload)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(interfaces.AuditJob{
			JobID:      testJobID,
			DocumentID: testDocID,
			Standard:   "wcag2.1-aa",
			Status:     interfaces.JobQueued,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "ninja-token")
	job, err := client.StartAudit(context.Background(), testDocID, "wcag2.1-aa")

	if err != nil {
		t.Fatalf("StartAudit returned error: %v", err)
	}
	if gotPath != "/api/v1/audits" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer ninja-token" {
		t.Errorf("unexpected auth header: %s", gotAuth)
	}
	if gotPayload["document_id"] != testDocID || gotPayload["standard"] != "wcag2.1-aa" {
		t.Errorf("unexpected payload: %v", gotPayload)
	}
	if job.JobID != testJobID || job.Status != interfaces.JobQueued {
		t.Errorf("unexpected job: %+v", job)
	}
}

func TestClient_StartAudit_RejectsBadInput(t *testing.T) {
	client := NewClient("http://unused.invalid", "token")

	if _, err := client.StartAudit(context.Background(), "not-a-uuid", "wcag2.1-aa"); err == nil {
		t.Error("expected error for invalid document id")
	}
	if _, err := client.StartAudit(context.Background(), testDocID, "wcag9-zz"); err == nil {
		t.Error("expected error for unknown standard")
	}
}

func TestClient_GetAuditJob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/audits/"+testJobID {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(interfaces.AuditJob{
			JobID:    testJobID,
			Status:   interfaces.JobProcessing,
			Progress: 40,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	job, err := client.GetAuditJob(context.Background(), testJobID)

	if err != nil {
		t.Fatalf("GetAuditJob returned error: %v", err)
	}
	if job.Status != interfaces.JobProcessing || job.Progress != 40 {
		t.Errorf("unexpected job: %+v", job)
	}
}

func TestClient_ListIssues_QueryParams(t *testing.T) {
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issues": []interfaces.Issue{
				{ID: "i1", RuleID: "img-alt", Severity: interfaces.SeverityCritical, Fixable: true},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	list, err := client.ListIssues(context.Background(), testJobID, interfaces.IssueQuery{
		Severity:    interfaces.SeverityCritical,
		Rule:        "img-alt",
		FixableOnly: true,
	})

	if err != nil {
		t.Fatalf("ListIssues returned error: %v", err)
	}
	if len(list) != 1 || list[0].ID != "i1" {
		t.Errorf("unexpected issues: %+v", list)
	}
	if gotQuery["severity"][0] != "critical" || gotQuery["rule"][0] != "img-alt" || gotQuery["fixable"][0] != "true" {
		t.Errorf("unexpected query: %v", gotQuery)
	}
}

func TestClient_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"audit job not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	_, err := client.GetAuditJob(context.Background(), testJobID)

	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "audit job not found" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
	if !IsNotFound(err) {
		t.Error("expected IsNotFound to report true")
	}
}

func TestClient_UploadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "novel.epub")
	if err := os.WriteFile(path, []byte("PK\x03\x04fake-epub"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/documents" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart form: %v", err)
		}
		if got := r.FormValue("format"); got != "epub" {
			t.Errorf("unexpected format field: %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("reading file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "novel.epub" {
			t.Errorf("unexpected filename: %q", header.Filename)
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(interfaces.Document{
			ID:       testDocID,
			Filename: header.Filename,
			Format:   interfaces.FormatEPUB,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	doc, err := client.UploadDocument(context.Background(), path)

	if err != nil {
		t.Fatalf("UploadDocument returned error: %v", err)
	}
	if doc.ID != testDocID || doc.Format != interfaces.FormatEPUB {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestClient_FetchReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "vpat" {
			t.Errorf("unexpected type param: %q", got)
		}
		if got := r.URL.Query().Get("format"); got != "html" {
			t.Errorf("unexpected format param: %q", got)
		}
		_, _ = w.Write([]byte("<html>VPAT</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	body, err := client.FetchReport(context.Background(), testJobID, interfaces.ReportVPAT, "html")

	if err != nil {
		t.Fatalf("FetchReport returned error: %v", err)
	}
	if string(body) != "<html>VPAT</html>" {
		t.Errorf("unexpected body: %q", body)
	}

	if _, err := client.FetchReport(context.Background(), testJobID, interfaces.ReportKind("audit"), "html"); err == nil {
		t.Error("expected error for unknown report kind")
	}
	if _, err := client.FetchReport(context.Background(), testJobID, interfaces.ReportACR, "xls"); err == nil {
		t.Error("expected error for unsupported report format")
	}
}

func TestClient_ApplyQuickFixes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string][]string
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &payload)
		if len(payload["issue_ids"]) != 2 {
			t.Errorf("unexpected issue ids: %v", payload["issue_ids"])
		}
		_ = json.NewEncoder(w).Encode(interfaces.RemediationOutcome{JobID: testJobID, Applied: 2})
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	outcome, err := client.ApplyQuickFixes(context.Background(), testJobID, []string{"i1", "i2"})

	if err != nil {
		t.Fatalf("ApplyQuickFixes returned error: %v", err)
	}
	if outcome.Applied != 2 {
		t.Errorf("unexpected outcome: %+v", outcome)
	}

	if _, err := client.ApplyQuickFixes(context.Background(), testJobID, nil); err == nil {
		t.Error("expected error for empty issue list")
	}
}

func TestClient_ValidateCitations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/citations/validate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(interfaces.CitationReport{
			DocumentID: testDocID,
			Checked:    42,
			Verified:   40,
			Issues: []interfaces.CitationIssue{
				{ID: "c1", Type: "missing-doi", Citation: "Smith et al. 2019"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	report, err := client.ValidateCitations(context.Background(), testDocID)

	if err != nil {
		t.Fatalf("ValidateCitations returned error: %v", err)
	}
	if report.Checked != 42 || len(report.Issues) != 1 {
		t.Errorf("unexpected report: %+v", report)
	}
}
