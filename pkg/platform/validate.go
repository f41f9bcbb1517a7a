package platform

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// Audit standards accepted by the backend audit engine.
var allowedStandards = map[string]bool{
	"wcag2.1-aa": true,
	"wcag2.2-aa": true,
	"epub-a11y":  true,
	"pdf-ua":     true,
}

// ValidateJobID checks that a job identifier is a well-formed UUID before it
// is interpolated into a request path.
func ValidateJobID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("platform: invalid job id %q: %w", id, err)
	}
	return nil
}

// ValidateDocumentID checks that a document identifier is a well-formed UUID.
func ValidateDocumentID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("platform: invalid document id %q: %w", id, err)
	}
	return nil
}

// ValidateStandard checks an audit standard against the accepted set.
func ValidateStandard(standard string) error {
	if !allowedStandards[standard] {
		return fmt.Errorf("platform: unsupported audit standard %q", standard)
	}
	return nil
}

// FormatFromFilename derives the document format from a file extension.
func FormatFromFilename(name string) (interfaces.DocumentFormat, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".epub":
		return interfaces.FormatEPUB, nil
	case ".pdf":
		return interfaces.FormatPDF, nil
	case ".docx":
		return interfaces.FormatDOCX, nil
	default:
		return "", fmt.Errorf("platform: unsupported document format for %q (want .epub, .pdf, or .docx)", name)
	}
}
