package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/s4cindia/ninja-cli/pkg/cli"
	"github.com/s4cindia/ninja-cli/pkg/interfaces"
	"github.com/s4cindia/ninja-cli/pkg/report"
)

func TestSelectFormatter(t *testing.T) {
	cfg := cli.DefaultConfig()

	if _, ok := selectFormatter("json", cfg).(*report.JSONFormatter); !ok {
		t.Error("expected JSON formatter for json")
	}
	if _, ok := selectFormatter("markdown", cfg).(*report.MarkdownFormatter); !ok {
		t.Error("expected Markdown formatter for markdown")
	}
	if _, ok := selectFormatter("", cfg).(*report.TerminalFormatter); !ok {
		t.Error("expected terminal formatter for config default")
	}

	cfg.Output.Format = "markdown"
	if _, ok := selectFormatter("", cfg).(*report.MarkdownFormatter); !ok {
		t.Error("expected config default to select the Markdown formatter")
	}
}

func TestNewPlatformClient_RequiresToken(t *testing.T) {
	cfg := cli.DefaultConfig()
	cfg.API.TokenEnv = "NINJA_TEST_TOKEN_UNSET"
	os.Unsetenv(cfg.API.TokenEnv)

	if _, err := newPlatformClient(cfg); err == nil {
		t.Fatal("expected error when token env is unset")
	}

	t.Setenv(cfg.API.TokenEnv, "tok")
	if _, err := newPlatformClient(cfg); err != nil {
		t.Fatalf("expected client with token set, got %v", err)
	}
}

func TestNewCalculator_UsesConfiguredWeights(t *testing.T) {
	cfg := cli.DefaultConfig()
	cfg.Weights.Critical = 50
	cfg.Thresholds.Partial = 40

	calc := newCalculator(cfg)
	bd, err := calc.Breakdown(interfaces.IssueSeverityCounts{Critical: 1})
	if err != nil {
		t.Fatalf("Breakdown returned error: %v", err)
	}

	if bd.FinalScore != 50 {
		t.Errorf("expected score 50 with critical weight 50, got %d", bd.FinalScore)
	}
	if calc.Rate(bd.FinalScore) != interfaces.RatingPartial {
		t.Errorf("expected PARTIAL with partial threshold 40, got %s", calc.Rate(bd.FinalScore))
	}
}

func TestIsLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.epub")
	if err := os.WriteFile(path, []byte("PK\x03\x04"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if !isLocalFile(path) {
		t.Errorf("expected %s to be a local file", path)
	}
	if isLocalFile(filepath.Dir(path)) {
		t.Error("expected directory not to count as a local file")
	}
	if isLocalFile("7c9e6679-7425-40de-944b-e07fc1f90ae7") {
		t.Error("expected document id not to count as a local file")
	}
}

func TestIssueIDs(t *testing.T) {
	ids := issueIDs([]interfaces.Issue{{ID: "i1"}, {ID: "i2"}})
	if len(ids) != 2 || ids[0] != "i1" || ids[1] != "i2" {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestWriteBreakdownTable(t *testing.T) {
	cfg := cli.DefaultConfig()
	calc := newCalculator(cfg)
	bd, err := calc.Breakdown(interfaces.IssueSeverityCounts{Critical: 2, Minor: 3})
	if err != nil {
		t.Fatalf("Breakdown returned error: %v", err)
	}

	var buf bytes.Buffer
	writeBreakdownTable(&buf, bd, calc.Rate(bd.FinalScore))
	out := buf.String()

	for _, want := range []string{"Compliance Score: 47/100", "total deduction: -53", "critical"} {
		if !strings.Contains(out, want) {
			t.Errorf("breakdown table missing %q:\n%s", want, out)
		}
	}
}
