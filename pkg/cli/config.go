// Package cli provides CLI-specific logic including configuration loading.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the .ninja.yml configuration file.
type Config struct {
	Version    string          `yaml:"version"`
	API        APIConfig       `yaml:"api"`
	Thresholds ThresholdConfig `yaml:"thresholds"`
	Weights    WeightsConfig   `yaml:"weights"`
	Audit      AuditConfig     `yaml:"audit"`
	Output     OutputConfig    `yaml:"output"`
	History    HistoryConfig   `yaml:"history"`
}

// APIConfig holds the backend connection settings.
type APIConfig struct {
	BaseURL  string `yaml:"base_url"`
	TokenEnv string `yaml:"token_env"`
}

// Token reads the API token from the configured environment variable.
func (a APIConfig) Token() string {
	return os.Getenv(a.TokenEnv)
}

// ThresholdConfig holds the conformance rating thresholds.
type ThresholdConfig struct {
	Conformant int `yaml:"conformant"`
	Partial    int `yaml:"partial"`
}

// WeightsConfig overrides the per-tier score deduction weights.
type WeightsConfig struct {
	Critical int `yaml:"critical"`
	Serious  int `yaml:"serious"`
	Moderate int `yaml:"moderate"`
	Minor    int `yaml:"minor"`
}

// AuditConfig holds audit run settings.
type AuditConfig struct {
	Standard       string `yaml:"standard"`
	TimeoutMinutes int    `yaml:"timeout_minutes"`
}

// OutputConfig controls report output settings.
type OutputConfig struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

// HistoryConfig controls the local audit history cache.
type HistoryConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// IsEnabled reports whether the history cache is enabled.
// Returns true by default if not explicitly set.
func (h HistoryConfig) IsEnabled() bool {
	if h.Enabled == nil {
		return true
	}
	return *h.Enabled
}

// LoadConfig reads and parses a .ninja.yml configuration file.
// If path is empty, it looks for .ninja.yml in the current directory.
// If the default config file is not found, sensible defaults are returned.
// If an explicitly specified config file is not found, an error is returned.
func LoadConfig(path string) (*Config, error) {
	useDefault := path == ""
	if useDefault {
		path = ".ninja.yml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && useDefault {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults matching the
// documented .ninja.yml schema.
func DefaultConfig() *Config {
	cfg := &Config{Version: "1"}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.API.TokenEnv == "" {
		cfg.API.TokenEnv = "NINJA_API_TOKEN"
	}
	if cfg.Thresholds.Conformant == 0 {
		cfg.Thresholds.Conformant = 90
	}
	if cfg.Thresholds.Partial == 0 {
		cfg.Thresholds.Partial = 60
	}
	if cfg.Weights.Critical == 0 {
		cfg.Weights.Critical = 25
	}
	if cfg.Weights.Serious == 0 {
		cfg.Weights.Serious = 10
	}
	if cfg.Weights.Moderate == 0 {
		cfg.Weights.Moderate = 5
	}
	if cfg.Weights.Minor == 0 {
		cfg.Weights.Minor = 1
	}
	if cfg.Audit.Standard == "" {
		cfg.Audit.Standard = "wcag2.1-aa"
	}
	if cfg.Audit.TimeoutMinutes == 0 {
		cfg.Audit.TimeoutMinutes = 15
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "terminal"
	}
}
