package app

import (
	"testing"
	"time"
)

func TestEnvString(t *testing.T) {
	t.Setenv("SPARK_TEST_STR", "  value  ")
	if got := EnvString("SPARK_TEST_STR", "def"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := EnvString("SPARK_TEST_STR_MISSING", "def"); got != "def" {
		t.Fatalf("expected default, got %q", got)
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("SPARK_TEST_BOOL", "true")
	if !EnvBool("SPARK_TEST_BOOL", false) {
		t.Fatalf("expected true")
	}

	t.Setenv("SPARK_TEST_BOOL", "not-a-bool")
	if !EnvBool("SPARK_TEST_BOOL", true) {
		t.Fatalf("expected default on parse failure")
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("SPARK_TEST_INT", "42")
	if got := EnvInt("SPARK_TEST_INT", 1); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	t.Setenv("SPARK_TEST_INT", "-5")
	if got := EnvInt("SPARK_TEST_INT", 7); got != 7 {
		t.Fatalf("expected default for non-positive value, got %d", got)
	}
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("SPARK_TEST_DUR", "250ms")
	if got := EnvDuration("SPARK_TEST_DUR", time.Second); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", got)
	}

	t.Setenv("SPARK_TEST_DUR", "bogus")
	if got := EnvDuration("SPARK_TEST_DUR", time.Second); got != time.Second {
		t.Fatalf("expected default on parse failure, got %v", got)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.HTTPAddr == "" {
		t.Fatalf("expected default http addr")
	}
	if cfg.ReadHeaderTimeout <= 0 || cfg.IdleTimeout <= 0 {
		t.Fatalf("expected positive default timeouts: %+v", cfg)
	}
	if cfg.MaxHeaderBytes <= 0 {
		t.Fatalf("expected positive max header bytes")
	}
}
