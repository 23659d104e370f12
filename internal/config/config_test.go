package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.GetTimeLimit() != 60*time.Second {
		t.Fatalf("default time limit = %v", cfg.GetTimeLimit())
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prover.Algorithm != "discount" {
		t.Fatalf("algorithm = %q, want discount", cfg.Prover.Algorithm)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vampire.yaml")
	data := []byte("prover:\n  time_limit: 5s\n  algorithm: otter\n  activation_limit: 100\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GetTimeLimit() != 5*time.Second {
		t.Fatalf("time limit = %v, want 5s", cfg.GetTimeLimit())
	}
	if cfg.Prover.Algorithm != "otter" {
		t.Fatalf("algorithm = %q, want otter", cfg.Prover.Algorithm)
	}
	if cfg.Prover.ActivationLimit != 100 {
		t.Fatalf("activation limit = %d, want 100", cfg.Prover.ActivationLimit)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.Logging.Level)
	}
	// fields absent from the file keep their defaults
	if !cfg.Prover.ShowProof {
		t.Fatal("show_proof default lost")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vampire.yaml")
	if err := os.WriteFile(path, []byte("prover: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VAMPIRE_TIME_LIMIT", "7s")
	t.Setenv("VAMPIRE_ALGORITHM", "otter")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GetTimeLimit() != 7*time.Second {
		t.Fatalf("time limit = %v, want 7s", cfg.GetTimeLimit())
	}
	if cfg.Prover.Algorithm != "otter" {
		t.Fatalf("algorithm = %q, want otter", cfg.Prover.Algorithm)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Prover.TimeLimit = "soon" },
		func(c *Config) { c.Prover.Algorithm = "sos" },
		func(c *Config) { c.Prover.ActivationLimit = -1 },
		func(c *Config) { c.Prover.MaxClauseWeight = -5 },
	}
	for i, mutate := range cases {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected a validation error", i)
		}
	}
}
