package config

import "testing"

type testConfig struct {
	Path string `env:"FORCE_ALIGNMENT_TEST_PATH" envDefault:"/tmp/default.db"`
	Port int    `env:"FORCE_ALIGNMENT_TEST_PORT" envDefault:"8080"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Path != "/tmp/default.db" {
		t.Fatalf("expected default path, got %q", cfg.Path)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Port)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("FORCE_ALIGNMENT_TEST_PATH", "/data/flags.db")
	t.Setenv("FORCE_ALIGNMENT_TEST_PORT", "9001")

	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Path != "/data/flags.db" {
		t.Fatalf("expected env path, got %q", cfg.Path)
	}
	if cfg.Port != 9001 {
		t.Fatalf("expected env port 9001, got %d", cfg.Port)
	}
}
