package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bookweb/internal/platform/bookapi"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ADDR", "BOOKS_API_BASE_URL", "BOOKS_API_USER_AGENT", "BOOKS_API_TIMEOUT",
		"BOOKS_API_RPS", "BOOKS_API_INSECURE_TLS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "MAX_BODY_BYTES",
	} {
		t.Setenv(key, "")
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.addr)
	}
	if cfg.api.BaseURL != bookapi.DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.api.BaseURL)
	}
	if cfg.api.Timeout != bookapi.DefaultTimeout {
		t.Fatalf("expected default timeout, got %v", cfg.api.Timeout)
	}
	if cfg.api.RPS != 0 || cfg.api.InsecureSkipVerify {
		t.Fatalf("expected no pacing and strict TLS, got %+v", cfg.api)
	}
	if cfg.rateLimitRPS != 10 || cfg.rateLimitBurst != 20 {
		t.Fatalf("unexpected rate limit defaults: %v/%d", cfg.rateLimitRPS, cfg.rateLimitBurst)
	}
	if cfg.maxBodyBytes != 1<<20 {
		t.Fatalf("unexpected body limit: %d", cfg.maxBodyBytes)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("BOOKS_API_BASE_URL", "http://books.internal/api")
	t.Setenv("BOOKS_API_TIMEOUT", "3s")
	t.Setenv("BOOKS_API_RPS", "2.5")
	t.Setenv("BOOKS_API_INSECURE_TLS", "true")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.addr != ":9090" || cfg.api.BaseURL != "http://books.internal/api" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.api.Timeout != 3*time.Second || cfg.api.RPS != 2.5 || !cfg.api.InsecureSkipVerify {
		t.Fatalf("env not applied to api config: %+v", cfg.api)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"BOOKS_API_TIMEOUT":      "soon",
		"BOOKS_API_RPS":          "-1",
		"BOOKS_API_INSECURE_TLS": "maybe",
		"RATE_LIMIT_BURST":       "many",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := loadConfig(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")

	if err := os.WriteFile(p, []byte("BOOKS_API_BASE_URL=from_file\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("BOOKS_API_BASE_URL", "from_env")

	cwd, _ := os.Getwd()
	_ = os.Chdir(tmp)
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	loadEnvFiles()

	if got := os.Getenv("BOOKS_API_BASE_URL"); got != "from_env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}
