package preflight

import (
	"bytes"
	"context"
	"fmt"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// DefaultMaxSize is the largest upload the platform accepts.
const DefaultMaxSize = 250 << 20 // 250 MiB

// Magic bytes per format. EPUB and DOCX are zip containers.
var (
	zipMagic = []byte("PK\x03\x04")
	pdfMagic = []byte("%PDF-")
)

// FormatCheck verifies that the file content matches its claimed format.
type FormatCheck struct{}

// NewFormatCheck creates a format/content consistency check.
func NewFormatCheck() *FormatCheck {
	return &FormatCheck{}
}

// Name returns the check identifier.
func (c *FormatCheck) Name() string { return "format" }

// Run sniffs the file header against the format claimed by the extension.
func (c *FormatCheck) Run(ctx context.Context, file *File) (*Result, error) {
	result := &Result{CheckName: c.Name()}

	var want []byte
	switch file.Format {
	case interfaces.FormatEPUB, interfaces.FormatDOCX:
		want = zipMagic
	case interfaces.FormatPDF:
		want = pdfMagic
	default:
		return nil, fmt.Errorf("unknown format %q", file.Format)
	}

	if !bytes.HasPrefix(file.Header, want) {
		result.Findings = append(result.Findings, Finding{
			Check:    c.Name(),
			Severity: interfaces.SeverityCritical,
			Message:  fmt.Sprintf("%s: content does not look like a %s file", file.Name, file.Format),
		})
	}

	return result, nil
}

// SizeCheck verifies the file is non-empty and within the upload limit.
type SizeCheck struct {
	maxSize int64
}

// SizeOption configures the SizeCheck.
type SizeOption func(*SizeCheck)

// WithMaxSize overrides the default upload size limit.
func WithMaxSize(n int64) SizeOption {
	return func(c *SizeCheck) {
		c.maxSize = n
	}
}

// NewSizeCheck creates a file size check.
func NewSizeCheck(opts ...SizeOption) *SizeCheck {
	c := &SizeCheck{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the check identifier.
func (c *SizeCheck) Name() string { return "size" }

// Run checks the staged file's size.
func (c *SizeCheck) Run(ctx context.Context, file *File) (*Result, error) {
	result := &Result{CheckName: c.Name()}

	switch {
	case file.Size == 0:
		result.Findings = append(result.Findings, Finding{
			Check:    c.Name(),
			Severity: interfaces.SeverityCritical,
			Message:  fmt.Sprintf("%s: file is empty", file.Name),
		})
	case file.Size > c.maxSize:
		result.Findings = append(result.Findings, Finding{
			Check:    c.Name(),
			Severity: interfaces.SeveritySerious,
			Message:  fmt.Sprintf("%s: %d bytes exceeds the %d byte upload limit", file.Name, file.Size, c.maxSize),
		})
	}

	return result, nil
}

// DefaultRegistry returns a registry with the standard preflight checks.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(NewFormatCheck())
	_ = r.Register(NewSizeCheck())
	return r
}
