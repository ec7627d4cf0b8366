package token

import (
	"os"
	"strings"
	"time"
)

// Config holds access-token verification settings.
type Config struct {
	// Issuer is enforced on every verified token.
	Issuer string

	// AccessTokenTTL bounds tokens issued by this manager.
	AccessTokenTTL time.Duration

	// ClockSkew tolerates minor clock differences during verification.
	ClockSkew time.Duration

	// SymmetricKeyHex is the shared 32-byte key, hex encoded.
	SymmetricKeyHex string
}

// DefaultConfig returns safe defaults (key must still be provided).
func DefaultConfig() Config {
	return Config{
		Issuer:         "spark",
		AccessTokenTTL: 15 * time.Minute,
		ClockSkew:      30 * time.Second,
	}
}

// LoadConfigFromEnv loads Config from environment variables with defaults.
func LoadConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv("SPARK_TOKEN_ISSUER")); v != "" {
		cfg.Issuer = v
	}
	if v := strings.TrimSpace(os.Getenv("SPARK_TOKEN_TTL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.AccessTokenTTL = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("SPARK_TOKEN_CLOCK_SKEW")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ClockSkew = d
		}
	}
	cfg.SymmetricKeyHex = strings.TrimSpace(os.Getenv("SPARK_TOKEN_KEY_HEX"))

	return cfg
}
