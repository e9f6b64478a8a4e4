package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	EnvironmentLiveMode = "live_mode"
	EnvironmentTestMode = "test_mode"
)

// ClientConfig configures the API client from the environment.
type ClientConfig struct {
	APIKey      string
	Environment string
	// BaseURL overrides the URL implied by Environment when set.
	BaseURL string

	HTTPTimeout time.Duration
}

func LoadClientConfigFromEnv() (ClientConfig, error) {
	apiKey := strings.TrimSpace(os.Getenv("PAYLANE_API_KEY"))
	if apiKey == "" {
		return ClientConfig{}, fmt.Errorf("missing required env var: PAYLANE_API_KEY")
	}

	cfg := ClientConfig{
		APIKey:      apiKey,
		Environment: EnvironmentTestMode,
		BaseURL:     strings.TrimSpace(os.Getenv("PAYLANE_BASE_URL")),
		HTTPTimeout: 30 * time.Second,
	}

	if v := strings.TrimSpace(os.Getenv("PAYLANE_ENVIRONMENT")); v != "" {
		switch v {
		case EnvironmentLiveMode, EnvironmentTestMode:
			cfg.Environment = v
		default:
			return ClientConfig{}, fmt.Errorf("PAYLANE_ENVIRONMENT must be %s or %s, got %q", EnvironmentLiveMode, EnvironmentTestMode, v)
		}
	}
	if v := os.Getenv("PAYLANE_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return ClientConfig{}, fmt.Errorf("PAYLANE_HTTP_TIMEOUT must be a duration (e.g. 30s): %w", err)
		}
		if d <= 0 {
			return ClientConfig{}, fmt.Errorf("PAYLANE_HTTP_TIMEOUT must be positive, got %s", d)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}
