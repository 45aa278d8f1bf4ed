package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DATA_DIR", "DATABASE_URL", "REDIS_ADDR", "SCRAPER_MAX_ATTEMPTS", "SCRAPER_BACKOFF", "SCRAPER_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPPort != "8080" || cfg.DataDir != "data" {
		t.Fatalf("unexpected defaults: port=%q data=%q", cfg.HTTPPort, cfg.DataDir)
	}
	if cfg.DatabaseURL != "" || cfg.RedisAddr != "" {
		t.Fatalf("expected optional backends to be empty")
	}
	if cfg.ScraperMaxAttempts != 3 || cfg.ScraperBackoff != 2*time.Second || cfg.ScraperTimeout != 15*time.Second {
		t.Fatalf("unexpected scraper defaults: %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SCRAPER_MAX_ATTEMPTS", "5")
	t.Setenv("SCRAPER_BACKOFF", "250ms")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPPort != "9090" || cfg.ScraperMaxAttempts != 5 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.ScraperBackoff != 250*time.Millisecond || cfg.RateLimitWindow != 30*time.Second {
		t.Fatalf("unexpected durations: backoff=%v window=%v", cfg.ScraperBackoff, cfg.RateLimitWindow)
	}
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("SCRAPER_TIMEOUT", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error for bad duration")
	}
}
