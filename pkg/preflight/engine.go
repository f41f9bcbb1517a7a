package preflight

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// Engine runs all registered checks against a staged file.
type Engine struct {
	registry *Registry
}

// NewEngine creates a preflight engine backed by the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Run executes all checks in parallel. A failing check does not stop the
// others; its error is captured in its result. Respects context cancellation.
func (e *Engine) Run(ctx context.Context, file *File) ([]*Result, error) {
	if file == nil {
		return nil, fmt.Errorf("preflight: file must not be nil")
	}

	checks := e.registry.Checks()
	if len(checks) == 0 {
		return nil, nil
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make([]*Result, 0, len(checks))
	)

	for _, c := range checks {
		wg.Add(1)
		go func(c Check) {
			defer wg.Done()

			if ctx.Err() != nil {
				return
			}

			name := c.Name()
			result, err := c.Run(ctx, file)
			if err != nil {
				slog.Error("preflight check failed", "name", name, "error", err)
				result = &Result{CheckName: name, Err: fmt.Errorf("preflight check %s: %w", name, err)}
			} else {
				slog.Debug("preflight check complete", "name", name, "findings", len(result.Findings))
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(c)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		<-done
		return results, ctx.Err()
	}

	return results, nil
}

// Blockers collects the findings severe enough to abort an upload.
func Blockers(results []*Result) []Finding {
	var out []Finding
	for _, r := range results {
		if r == nil || r.Err != nil {
			continue
		}
		for _, f := range r.Findings {
			if f.Severity == interfaces.SeverityCritical || f.Severity == interfaces.SeveritySerious {
				out = append(out, f)
			}
		}
	}
	return out
}
