package platform

import (
	"testing"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

func TestValidateJobID(t *testing.T) {
	if err := ValidateJobID("123e4567-e89b-12d3-a456-426614174000"); err != nil {
		t.Errorf("expected valid uuid to pass, got %v", err)
	}

	bad := []string{"", "123", "not-a-uuid", "123e4567-e89b-12d3-a456-42661417400z"}
	for _, id := range bad {
		if err := ValidateJobID(id); err == nil {
			t.Errorf("expected error for job id %q", id)
		}
	}
}

func TestValidateStandard(t *testing.T) {
	for _, s := range []string{"wcag2.1-aa", "wcag2.2-aa", "epub-a11y", "pdf-ua"} {
		if err := ValidateStandard(s); err != nil {
			t.Errorf("expected standard %q to pass, got %v", s, err)
		}
	}
	if err := ValidateStandard("section508"); err == nil {
		t.Error("expected error for unsupported standard")
	}
}

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		name    string
		want    interfaces.DocumentFormat
		wantErr bool
	}{
		{"book.epub", interfaces.FormatEPUB, false},
		{"Thesis.PDF", interfaces.FormatPDF, false},
		{"manuscript.docx", interfaces.FormatDOCX, false},
		{"notes.txt", "", true},
		{"archive", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromFilename(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FormatFromFilename(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("FormatFromFilename(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromFilename(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
