package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth
	GedgestAPIKey string

	// Upload limits
	MaxUploadBytes int64

	// Collation locale for sorted output (BCP 47, e.g. "da", "en-US").
	// Empty means locale-neutral ordering.
	DefaultLocale string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		GedgestAPIKey: os.Getenv("GEDGEST_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

func (c Config) Validate() error {
	if c.GedgestAPIKey == "" {
		return fmt.Errorf("GEDGEST_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
