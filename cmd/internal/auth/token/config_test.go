package token

import (
	"testing"
	"time"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("SPARK_TOKEN_ISSUER", "")
	t.Setenv("SPARK_TOKEN_TTL", "")
	t.Setenv("SPARK_TOKEN_CLOCK_SKEW", "")
	t.Setenv("SPARK_TOKEN_KEY_HEX", "")

	cfg := LoadConfigFromEnv()
	if cfg.Issuer != "spark" {
		t.Fatalf("expected default issuer, got %q", cfg.Issuer)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("expected default ttl, got %v", cfg.AccessTokenTTL)
	}
	if cfg.SymmetricKeyHex != "" {
		t.Fatalf("expected empty key by default, got %q", cfg.SymmetricKeyHex)
	}
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("SPARK_TOKEN_ISSUER", "idea-api")
	t.Setenv("SPARK_TOKEN_TTL", "1h")
	t.Setenv("SPARK_TOKEN_CLOCK_SKEW", "5s")
	t.Setenv("SPARK_TOKEN_KEY_HEX", "abc123")

	cfg := LoadConfigFromEnv()
	if cfg.Issuer != "idea-api" {
		t.Fatalf("expected issuer override, got %q", cfg.Issuer)
	}
	if cfg.AccessTokenTTL != time.Hour {
		t.Fatalf("expected ttl override, got %v", cfg.AccessTokenTTL)
	}
	if cfg.ClockSkew != 5*time.Second {
		t.Fatalf("expected clock skew override, got %v", cfg.ClockSkew)
	}
	if cfg.SymmetricKeyHex != "abc123" {
		t.Fatalf("expected key override, got %q", cfg.SymmetricKeyHex)
	}
}

func TestLoadConfigFromEnv_BadDurationsKeepDefaults(t *testing.T) {
	t.Setenv("SPARK_TOKEN_TTL", "bogus")
	t.Setenv("SPARK_TOKEN_CLOCK_SKEW", "-1s")

	cfg := LoadConfigFromEnv()
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("expected default ttl on parse failure, got %v", cfg.AccessTokenTTL)
	}
	if cfg.ClockSkew != 30*time.Second {
		t.Fatalf("expected default clock skew on parse failure, got %v", cfg.ClockSkew)
	}
}
