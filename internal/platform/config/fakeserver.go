package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// FakeServerConfig configures the local fake provider.
type FakeServerConfig struct {
	Port           string
	StorageBackend string
	DatabaseURL    string
	SQLitePath     string

	// APIKeys lists the accepted bearer keys. Empty accepts any key.
	APIKeys []string

	CheckoutBaseURL string
	ShutdownTimeout time.Duration

	// IdempotencyTTL is how long an Idempotency-Key replays its first response.
	IdempotencyTTL time.Duration
}

func LoadFakeServerConfigFromEnv() (FakeServerConfig, error) {
	cfg := FakeServerConfig{
		Port:            getenv("PORT", "8080"),
		StorageBackend:  getenv("STORAGE_BACKEND", StorageMemory),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      getenv("SQLITE_PATH", "paylane-fake.db"),
		CheckoutBaseURL: os.Getenv("CHECKOUT_BASE_URL"),
		ShutdownTimeout: 10 * time.Second,
		IdempotencyTTL:  24 * time.Hour,
	}
	for _, k := range strings.Split(os.Getenv("FAKE_API_KEY"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			cfg.APIKeys = append(cfg.APIKeys, k)
		}
	}

	switch cfg.StorageBackend {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return FakeServerConfig{}, fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return FakeServerConfig{}, fmt.Errorf("STORAGE_BACKEND must be memory, sqlite or postgres, got %q", cfg.StorageBackend)
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return FakeServerConfig{}, fmt.Errorf("SHUTDOWN_TIMEOUT must be a duration (e.g. 10s): %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	if v := os.Getenv("IDEMPOTENCY_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return FakeServerConfig{}, fmt.Errorf("IDEMPOTENCY_TTL must be a positive duration (e.g. 24h), got %q", v)
		}
		cfg.IdempotencyTTL = d
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
