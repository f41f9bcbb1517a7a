package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/s4cindia/ninja-cli/pkg/cli"
	"github.com/s4cindia/ninja-cli/pkg/history"
	"github.com/s4cindia/ninja-cli/pkg/interfaces"
	"github.com/s4cindia/ninja-cli/pkg/platform"
	"github.com/s4cindia/ninja-cli/pkg/report"
	"github.com/s4cindia/ninja-cli/pkg/scorer"
)

// formatter writes a compliance report to a writer.
type formatter interface {
	Format(w io.Writer, report *interfaces.ComplianceReport) error
}

// newPlatformClient builds an API client from config. The token comes from
// the environment variable named in the config; requests without one are
// rejected by the backend, so fail early here.
func newPlatformClient(cfg *cli.Config) (*platform.Client, error) {
	token := cfg.API.Token()
	if token == "" {
		return nil, fmt.Errorf("no API token found: set %s", cfg.API.TokenEnv)
	}
	return platform.NewClient(cfg.API.BaseURL, token), nil
}

// newCalculator builds a score calculator from the configured weights and thresholds.
func newCalculator(cfg *cli.Config) *scorer.Calculator {
	weights := scorer.SeverityWeights{
		interfaces.SeverityCritical: cfg.Weights.Critical,
		interfaces.SeveritySerious:  cfg.Weights.Serious,
		interfaces.SeverityModerate: cfg.Weights.Moderate,
		interfaces.SeverityMinor:    cfg.Weights.Minor,
	}
	return scorer.NewCalculator(
		scorer.WithSeverityWeights(weights),
		scorer.WithThresholds(cfg.Thresholds.Conformant, cfg.Thresholds.Partial),
	)
}

// selectFormatter returns the report formatter for the given format name,
// falling back to the configured default.
func selectFormatter(name string, cfg *cli.Config) formatter {
	if name == "" {
		name = cfg.Output.Format
	}
	switch name {
	case "json":
		return report.NewJSONFormatter()
	case "markdown":
		return report.NewMarkdownFormatter()
	default:
		return report.NewTerminalFormatter()
	}
}

// outputWriter returns the destination for rendered output, honoring the
// --output flag. The returned close func is a no-op for stdout.
func outputWriter() (io.Writer, func(), error) {
	if output == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}

// openHistory opens the configured history store, or returns nil when the
// cache is disabled. Failure to open is logged, not fatal: a broken local
// cache must not block an audit.
func openHistory(cfg *cli.Config) *history.Store {
	if !cfg.History.IsEnabled() {
		return nil
	}

	path := cfg.History.Path
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			slog.Warn("history disabled", "error", err)
			return nil
		}
	}

	store, err := history.Open(path)
	if err != nil {
		slog.Warn("history disabled", "error", err)
		return nil
	}
	return store
}
