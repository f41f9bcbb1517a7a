// Package preflight runs local validation checks on a document before it is
// uploaded to the platform, catching obviously broken files without a round trip.
package preflight

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
	"github.com/s4cindia/ninja-cli/pkg/platform"
)

// headerSize is how many leading bytes are sniffed for format detection.
const headerSize = 512

// File is a local document staged for upload.
type File struct {
	Path   string
	Name   string
	Size   int64
	Format interfaces.DocumentFormat // claimed by the file extension
	Header []byte                    // first bytes of the file, may be shorter than headerSize
}

// Open stats and sniffs a local file, deriving its claimed format from the
// extension. The extension must be one the platform accepts.
func Open(path string) (*File, error) {
	format, err := platform.FormatFromFilename(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("preflight: stating %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("preflight: %s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("preflight: opening %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, headerSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("preflight: reading %s: %w", path, err)
	}

	return &File{
		Path:   path,
		Name:   filepath.Base(path),
		Size:   info.Size(),
		Format: format,
		Header: header[:n],
	}, nil
}

// Finding is a single problem detected by a preflight check.
type Finding struct {
	Check    string              `json:"check"`
	Severity interfaces.Severity `json:"severity"`
	Message  string              `json:"message"`
}

// Result is what each check returns.
type Result struct {
	CheckName string    `json:"check_name"`
	Findings  []Finding `json:"findings"`
	Err       error     `json:"-"`
}

// Check is the interface individual preflight checks implement.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Run inspects the staged file and returns any findings.
	Run(ctx context.Context, file *File) (*Result, error)
}

// Registry manages the set of registered preflight checks.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]Check
	order  []string
}

// NewRegistry creates an empty check registry.
func NewRegistry() *Registry {
	return &Registry{checks: make(map[string]Check)}
}

// Register adds a check to the registry.
// Returns an error if a check with the same name is already registered.
func (r *Registry) Register(c Check) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.checks[name]; exists {
		return fmt.Errorf("preflight: check %q is already registered", name)
	}
	r.checks[name] = c
	r.order = append(r.order, name)
	return nil
}

// Checks returns the registered checks in registration order.
func (r *Registry) Checks() []Check {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Check, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.checks[name])
	}
	return out
}
