// Package config holds the CLI configuration: search limits, strategy
// selection and output options, loadable from a YAML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Dragon-Hatcher/vampire-lib/pkg/saturation"
)

// Config holds all vampire CLI configuration.
type Config struct {
	Prover  ProverConfig  `yaml:"prover"`
	Logging LoggingConfig `yaml:"logging"`
}

// ProverConfig bounds and shapes the search.
type ProverConfig struct {
	// TimeLimit per query, as a duration string ("30s", "2m").
	TimeLimit string `yaml:"time_limit"`

	// ActivationLimit caps given-clause activations; 0 means no limit.
	ActivationLimit int `yaml:"activation_limit"`

	// MaxClauseWeight discards heavier generated clauses; 0 keeps all.
	MaxClauseWeight int `yaml:"max_clause_weight"`

	// Algorithm selects the given-clause strategy.
	Algorithm string `yaml:"algorithm"`

	// ShowProof prints the extracted refutation after a successful query.
	ShowProof bool `yaml:"show_proof"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Prover: ProverConfig{
			TimeLimit: "60s",
			Algorithm: "discount",
			ShowProof: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults rather than an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("VAMPIRE_TIME_LIMIT"); v != "" {
		c.Prover.TimeLimit = v
	}
	if v := os.Getenv("VAMPIRE_ALGORITHM"); v != "" {
		c.Prover.Algorithm = v
	}
	if v := os.Getenv("VAMPIRE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// GetTimeLimit parses the per-query time limit, falling back to the default
// when the string is malformed.
func (c *Config) GetTimeLimit() time.Duration {
	if d, err := time.ParseDuration(c.Prover.TimeLimit); err == nil {
		return d
	}
	return 60 * time.Second
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Prover.TimeLimit); err != nil {
		return fmt.Errorf("invalid time_limit %q: %w", c.Prover.TimeLimit, err)
	}
	if c.Prover.ActivationLimit < 0 {
		return fmt.Errorf("activation_limit must be non-negative, got %d", c.Prover.ActivationLimit)
	}
	if c.Prover.MaxClauseWeight < 0 {
		return fmt.Errorf("max_clause_weight must be non-negative, got %d", c.Prover.MaxClauseWeight)
	}

	valid := false
	for _, a := range saturation.Algorithms() {
		if c.Prover.Algorithm == a {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid algorithm: %s (valid: %v)", c.Prover.Algorithm, saturation.Algorithms())
	}

	return nil
}
