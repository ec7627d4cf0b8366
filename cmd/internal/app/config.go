package app

import "time"

// Config contains all runtime configuration loaded from environment variables.
type Config struct {
	HTTPAddr string
	LogLevel string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
}

// LoadConfig loads Config from environment variables with defaults.
func LoadConfig() Config {
	return Config{
		HTTPAddr: EnvString("SPARK_HTTP_ADDR", "0.0.0.0:8080"),
		LogLevel: EnvString("SPARK_LOG_LEVEL", "info"),

		// Server timeouts apply to the plain HTTP surface only; a websocket
		// upgrade hijacks the connection out of the server's management.
		ReadHeaderTimeout: EnvDuration("SPARK_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       EnvDuration("SPARK_HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      EnvDuration("SPARK_HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       EnvDuration("SPARK_HTTP_IDLE_TIMEOUT", 60*time.Second),

		MaxHeaderBytes: EnvInt("SPARK_HTTP_MAX_HEADER_BYTES", 1<<20),
	}
}
